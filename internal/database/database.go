package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const retryDelay = 5 * time.Second

// Connect connects to MongoDB and verifies the connection with a ping.
// If the first attempt fails it retries exactly once after a fixed delay;
// per-request failures later on are never retried.
func Connect(mongoURI string) (*mongo.Client, error) {
	client, err := connect(mongoURI)
	if err != nil {
		log.Printf("MongoDB connection error: %v, retrying in %s...", err, retryDelay)
		time.Sleep(retryDelay)
		client, err = connect(mongoURI)
		if err != nil {
			return nil, err
		}
	}
	log.Println("Connected to MongoDB")
	return client, nil
}

func connect(mongoURI string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(5 * time.Second)

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
	return client, nil
}

// Disconnect closes the client with a bounded timeout.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
