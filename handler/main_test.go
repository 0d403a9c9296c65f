package handler

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"main/dto"
	"main/repository"
	"main/usecase"
	"main/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	os.Setenv("MONGO_DB", "challenges_test")
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
	os.Exit(m.Run())
}

// envelope mirrors the response wrapper for decoding in assertions.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *dto.Pagination `json:"pagination"`
}

// connectTestMongo connects to the local test mongod, skipping the test when
// none is reachable.
func connectTestMongo(t *testing.T) *mongo.Client {
	t.Helper()

	uri := utils.GetEnvAsString("MONGODB_URI", "mongodb://localhost:27017")
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("MongoDB not reachable: %v", err)
	}
	return client
}

// setupTestRouter wires the API routes against a scratch database and
// returns a cleanup that drops it.
func setupTestRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()

	client := connectTestMongo(t)
	db := client.Database("challenges_test")
	if err := repository.SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	blogPostService := &usecase.BlogPostService{
		BlogPostsRepo: repository.GetBlogPostsRepo(client),
	}
	challengeService := usecase.NewChallengeService(repository.GetChallengesRepo(client))

	router := gin.New()
	api := router.Group("/api")

	blog := api.Group("/blog")
	blog.GET("", func(c *gin.Context) { ListBlogPostsHandler(c, blogPostService) })
	blog.GET("/:id", func(c *gin.Context) { GetBlogPostHandler(c, blogPostService) })
	blog.POST("", func(c *gin.Context) { CreateBlogPostHandler(c, blogPostService) })
	blog.PUT("/:id", func(c *gin.Context) { UpdateBlogPostHandler(c, blogPostService) })
	blog.DELETE("/:id", func(c *gin.Context) { DeleteBlogPostHandler(c, blogPostService) })

	challenges := api.Group("/challenges")
	challenges.GET("", func(c *gin.Context) { ListChallengesHandler(c, challengeService) })
	challenges.GET("/:id", func(c *gin.Context) { GetChallengeHandler(c, challengeService) })
	challenges.POST("", func(c *gin.Context) { CreateChallengeHandler(c, challengeService) })
	challenges.PUT("/:id", func(c *gin.Context) { UpdateChallengeHandler(c, challengeService) })
	challenges.DELETE("/:id", func(c *gin.Context) { DeleteChallengeHandler(c, challengeService) })
	challenges.PATCH("/:id/toggle-day/:day", func(c *gin.Context) { ToggleDayHandler(c, challengeService) })

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Errorf("Failed to drop test database: %v", err)
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}

	return router, cleanup
}
