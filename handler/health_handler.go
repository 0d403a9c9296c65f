package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"

	"main/utils"
)

var startTime = time.Now()

// HealthHandler is the liveness probe.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startTime).Round(time.Second).String(),
		"system": gin.H{
			"cpuPercent":    utils.GetCPUUsage(),
			"memoryPercent": utils.GetMemoryUsage(),
		},
	})
}

// TestCORSHandler echoes what the server saw, so browser clients can check
// their origin made it through the allow-list.
func TestCORSHandler(c *gin.Context) {
	ua := useragent.Parse(c.Request.UserAgent())

	c.JSON(http.StatusOK, gin.H{
		"message":   "CORS is working!",
		"origin":    c.Request.Header.Get("Origin"),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"client": gin.H{
			"browser": ua.Name,
			"version": ua.Version,
			"os":      ua.OS,
			"mobile":  ua.Mobile,
			"bot":     ua.Bot,
		},
	})
}
