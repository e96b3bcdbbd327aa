package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yukikurage/devtrack-api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo collection names
const (
	CollectionUsers    = "users"
	CollectionLogs     = "logs"
	CollectionProjects = "projects"
	CollectionSkills   = "skills"
)

const mongoConnectTimeout = 10 * time.Second

// ConnectMongo opens a MongoDB client and verifies the connection.
func ConnectMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Printf("MongoDB connection established (database %s)", cfg.MongoDatabase)
	return client, nil
}

// MongoIndexes returns the indexes required by each collection.
func MongoIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CollectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollectionLogs: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "project_id", Value: 1}}},
		},
		CollectionProjects: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		CollectionSkills: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
	}
}

// EnsureMongoIndexes creates any missing indexes.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, indexes := range MongoIndexes() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
