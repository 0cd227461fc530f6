package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DBName is fixed; only the endpoint comes from configuration.
const DBName = "emogo"

// Connection owns the Mongo client for the lifetime of the process. It is
// created once in main and injected into the handlers, never looked up
// through a package global.
type Connection struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(mongoURI string) (*Connection, error) {
	// Use longer timeout for Atlas connections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	log.Printf("Attempting to connect to MongoDB...")
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	log.Println("✅ Connected to MongoDB")
	return &Connection{
		client: client,
		db:     client.Database(DBName),
	}, nil
}

func (c *Connection) Database() *mongo.Database {
	return c.db
}

func (c *Connection) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}
