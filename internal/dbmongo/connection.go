// Package dbmongo keeps the document store used for crisis alerts.
package dbmongo

import (
	"context"
	"fmt"
	"log"
	"time"

	"socialfeed/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const connectTimeout = 10 * time.Second

// MongoClient holds the connection to the alert database.
type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoConnection(c *config.Config) (*MongoClient, error) {
	opts := options.Client().
		ApplyURI(c.GetMongoURI()).
		SetAppName("socialfeed").
		SetServerSelectionTimeout(connectTimeout).
		SetWriteConcern(writeconcern.Majority())

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to alert store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("alert store unreachable: %w", err)
	}

	log.Printf("✅ Connected to MongoDB alert store %q", c.MongoDB.Database)
	return &MongoClient{
		Client:   client,
		Database: client.Database(c.MongoDB.Database),
	}, nil
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}
