package utils

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient is the process-wide MongoDB client, initialized once before the
// listener starts and passed into the repositories.
var MongoClient *mongo.Client

// InitMongoClient connects to MongoDB. A missing URI or failed connection is
// fatal: the API refuses to start without its store.
func InitMongoClient() {
	uri := GetEnvAsString("MONGODB_URI", "")
	if uri == "" {
		log.Fatal("MONGODB_URI is not defined in environment variables")
	}

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100)).
		SetMinPoolSize(GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10)).
		SetMaxConnIdleTime(GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", 60*time.Second)).
		SetRetryWrites(GetEnvAsBool("MONGO_RETRY_WRITES", true))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Fatalf("MongoDB connection error: %v", err)
	}

	MongoClient = client
	log.Println("Connected to MongoDB")
}

// CloseMongoClient tears the connection down on shutdown.
func CloseMongoClient() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
}
