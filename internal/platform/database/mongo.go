package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"canonforces/internal/platform/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

func Connect() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.MongoURI))
	if err != nil {
		log.Fatalf("Error opening document store: %v", err)
	}

	// Verify connection
	if err = Client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Error connecting to document store: %v", err)
	}

	DB = Client.Database(config.AppConfig.MongoDatabase)
	fmt.Println("Successfully connected to MongoDB document store!")
}

func Close() {
	if Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Client.Disconnect(ctx)
		fmt.Println("Document store connection closed.")
	}
}
