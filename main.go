package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	if os.Getenv("GO_ENV") == "test" {
		return
	}

	// The store connection string is the one setting the process cannot
	// run without.
	if os.Getenv("MONGODB_URI") == "" {
		log.Fatal("MONGODB_URI is not defined in environment variables")
	}

	utils.InitValidator()
	utils.InitMongoClient()
}

func setupRouter(serverCfg config.ServerConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())

	// Initialize repositories against the startup connection
	blogPostsRepo := repository.GetBlogPostsRepo(utils.MongoClient)
	challengesRepo := repository.GetChallengesRepo(utils.MongoClient)

	// Initialize services
	blogPostService := &usecase.BlogPostService{
		BlogPostsRepo: blogPostsRepo,
	}
	challengeService := usecase.NewChallengeService(challengesRepo)

	// Middleware chain: recovery first, then tracing, metrics, CORS,
	// security headers, rate limiting and the body cap.
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(serverCfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders())

	limiter := middleware.NewRateLimiter(serverCfg.RedisURL)
	router.Use(middleware.RateLimitMiddleware(limiter,
		serverCfg.RateLimitMax, serverCfg.RateLimitWindow))
	router.Use(middleware.RequestSizeLimiter(serverCfg.MaxBodyBytes))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", handler.HealthHandler)
		api.GET("/test-cors", handler.TestCORSHandler)

		blog := api.Group("/blog")
		{
			blog.GET("", func(c *gin.Context) {
				handler.ListBlogPostsHandler(c, blogPostService)
			})
			blog.GET("/:id", func(c *gin.Context) {
				handler.GetBlogPostHandler(c, blogPostService)
			})
			blog.POST("", func(c *gin.Context) {
				handler.CreateBlogPostHandler(c, blogPostService)
			})
			blog.PUT("/:id", func(c *gin.Context) {
				handler.UpdateBlogPostHandler(c, blogPostService)
			})
			blog.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteBlogPostHandler(c, blogPostService)
			})
		}

		challenges := api.Group("/challenges")
		{
			challenges.GET("", func(c *gin.Context) {
				handler.ListChallengesHandler(c, challengeService)
			})
			challenges.GET("/:id", func(c *gin.Context) {
				handler.GetChallengeHandler(c, challengeService)
			})
			challenges.POST("", func(c *gin.Context) {
				handler.CreateChallengeHandler(c, challengeService)
			})
			challenges.PUT("/:id", func(c *gin.Context) {
				handler.UpdateChallengeHandler(c, challengeService)
			})
			challenges.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteChallengeHandler(c, challengeService)
			})
			challenges.PATCH("/:id/toggle-day/:day", func(c *gin.Context) {
				handler.ToggleDayHandler(c, challengeService)
			})
		}
	}

	router.NoRoute(func(c *gin.Context) {
		utils.NotFound(c, "Route not found")
	})

	return router
}

func main() {
	serverCfg := config.LoadServerConfig()
	dbCfg := config.LoadDatabaseConfig()

	if err := repository.SetupIndexes(utils.MongoClient.Database(dbCfg.DatabaseName)); err != nil {
		log.Fatalf("Failed to setup indexes: %v", err)
	}
	defer utils.CloseMongoClient()

	middleware.StartSystemMetrics(15 * time.Second)

	router := setupRouter(serverCfg)

	serverAddr := fmt.Sprintf(":%s", serverCfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
