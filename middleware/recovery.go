package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"main/utils"
)

// RecoveryMiddleware turns panics into the 500 envelope instead of a dropped
// connection.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic recovered: %v", err)
				utils.InternalError(c, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
