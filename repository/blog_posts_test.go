package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"main/model"
	"main/utils"
)

func init() {
	os.Setenv("GO_ENV", "test")
	os.Setenv("MONGO_DB", "challenges_test")
}

func setupBlogPostsTest(t *testing.T) (*BlogPostsRepo, func()) {
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

	db := client.Database("challenges_test")
	if err := SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	repo := GetBlogPostsRepo(client)

	cleanup := func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		if err := db.Collection("blogposts").Drop(cleanupCtx); err != nil {
			t.Errorf("Failed to clean up test collection: %v", err)
		}
		if err := client.Disconnect(cleanupCtx); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}

	return repo, cleanup
}

func testPost(id string) *model.BlogPost {
	now := time.Now()
	return &model.BlogPost{
		ID:        id,
		Title:     "Test Post",
		Content:   "Test content",
		Excerpt:   "Test content",
		Author:    "tester",
		Tags:      []string{"test"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBlogPostsRepoCRUD(t *testing.T) {
	repo, cleanup := setupBlogPostsTest(t)
	defer cleanup()

	ctx := context.Background()

	if err := repo.Insert(ctx, testPost("p1")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	t.Run("duplicate insert is flagged", func(t *testing.T) {
		err := repo.Insert(ctx, testPost("p1"))
		if !errors.Is(err, ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("find by id round-trips", func(t *testing.T) {
		post, err := repo.FindByID(ctx, "p1")
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if post.Title != "Test Post" {
			t.Errorf("unexpected post %+v", post)
		}
	})

	t.Run("missing id is ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update returns the new document", func(t *testing.T) {
		post, err := repo.Update(ctx, "p1", bson.M{"title": "Renamed"})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if post.Title != "Renamed" {
			t.Errorf("expected updated title, got %q", post.Title)
		}

		_, err = repo.Update(ctx, "missing", bson.M{"title": "x"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("count and paged find agree", func(t *testing.T) {
		if err := repo.Insert(ctx, testPost("p2")); err != nil {
			t.Fatal(err)
		}
		total, err := repo.Count(ctx, bson.M{})
		if err != nil {
			t.Fatal(err)
		}
		if total != 2 {
			t.Errorf("expected 2 documents, got %d", total)
		}

		page, err := repo.Find(ctx, bson.M{},
			bson.D{{Key: "createdAt", Value: -1}}, 1, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(page) != 1 {
			t.Errorf("expected a single-result page, got %d", len(page))
		}
	})

	t.Run("delete returns the removed document", func(t *testing.T) {
		post, err := repo.Delete(ctx, "p1")
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if post.ID != "p1" {
			t.Errorf("unexpected deleted post %+v", post)
		}

		_, err = repo.Delete(ctx, "p1")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}
