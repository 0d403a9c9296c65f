package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes both collections rely on. The unique index
// on "id" is what turns a logical-id collision into a duplicate-key error.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	blogPostsCollection := db.Collection("blogposts")
	challengesCollection := db.Collection("challenges")

	blogPostIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "id", Value: 1}},
			Options: options.Index().
				SetName("blog_post_id").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().
				SetName("blog_post_created"),
		},
		{
			Keys: bson.D{{Key: "author", Value: 1}},
			Options: options.Index().
				SetName("blog_post_author"),
		},
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "content", Value: "text"},
				{Key: "tags", Value: "text"},
			},
			Options: options.Index().
				SetName("blog_post_text_search").
				SetDefaultLanguage("english"),
		},
	}

	challengeIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "id", Value: 1}},
			Options: options.Index().
				SetName("challenge_id").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "author", Value: 1}},
			Options: options.Index().
				SetName("challenge_author"),
		},
		{
			Keys: bson.D{{Key: "isActive", Value: 1}},
			Options: options.Index().
				SetName("challenge_active"),
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().
				SetName("challenge_created"),
		},
		{
			Keys: bson.D{{Key: "currentDay", Value: 1}},
			Options: options.Index().
				SetName("challenge_current_day"),
		},
	}

	_, err := blogPostsCollection.Indexes().CreateMany(ctx, blogPostIndexes)
	if err != nil {
		return fmt.Errorf("failed to create blog post indexes: %w", err)
	}

	_, err = challengesCollection.Indexes().CreateMany(ctx, challengeIndexes)
	if err != nil {
		return fmt.Errorf("failed to create challenge indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
