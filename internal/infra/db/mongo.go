package db

import (
	"context"
	"fmt"
	"time"

	"gasvision/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	OrdersCollection    = "orders"
	CustomersCollection = "customers"

	mongoConnectTimeout = 5 * time.Second
)

// OpenMongo は接続してpingが通ったDatabaseを返す。
func OpenMongo(ctx context.Context, uri string, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(mongoConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client.Database(database), nil
}

// NewMongoHandle は初回Acquireで接続する。
func NewMongoHandle(cfg config.Config) *Handle[*mongo.Database] {
	return NewHandle(func(ctx context.Context) (*mongo.Database, error) {
		return OpenMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	}, func(ctx context.Context, d *mongo.Database) error {
		return d.Client().Disconnect(ctx)
	})
}
