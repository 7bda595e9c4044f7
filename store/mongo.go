package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const slotCollectionName = "slots"

type MongoConfig struct {
	URI     string
	DBName  string
	Timeout time.Duration
}

// MongoBackend keeps one document per slot in the "slots" collection.
type MongoBackend struct {
	client     *mongo.Client
	collection *mongo.Collection
}

type slotDocument struct {
	Key       string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func NewMongoBackend(cfg MongoConfig) (*MongoBackend, error) {
	connectionTimeout := cfg.Timeout
	if connectionTimeout == 0 {
		connectionTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	log.Printf("Connecting to MongoDB database %s", cfg.DBName)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("Successfully connected and pinged MongoDB!")
	return &MongoBackend{
		client:     client,
		collection: client.Database(cfg.DBName).Collection(slotCollectionName),
	}, nil
}

func (b *MongoBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc slotDocument
	err := b.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to find slot: %w", err)
	}
	return []byte(doc.Payload), true, nil
}

func (b *MongoBackend) Put(ctx context.Context, key string, payload []byte) error {
	update := bson.M{
		"$set": bson.M{
			"payload":    string(payload),
			"updated_at": time.Now(),
		},
	}
	_, err := b.collection.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert slot: %w", err)
	}
	return nil
}

func (b *MongoBackend) Close(ctx context.Context) error {
	log.Println("Disconnecting MongoDB client...")
	return b.client.Disconnect(ctx)
}
