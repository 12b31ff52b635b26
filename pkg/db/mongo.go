package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/lokasync/cloudota/pkg/logger"
	"github.com/lokasync/cloudota/pkg/models"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultLogsCollection = "logs"
)

// DB implements Service on a MongoDB collection of session records.
type DB struct {
	client *mongo.Client
	logs   *mongo.Collection
	logger logger.Logger
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, cfg *models.MongoDatabase, log logger.Logger) (Service, error) {
	if cfg.URI == "" {
		return nil, errMissingDatabaseURI
	}

	if cfg.Database == "" {
		return nil, errMissingDatabaseName
	}

	timeout := time.Duration(cfg.ConnectTimeout)
	if timeout == 0 {
		timeout = defaultConnectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	collection := cfg.LogsCollection
	if collection == "" {
		collection = defaultLogsCollection
	}

	log.Info().
		Str("database", cfg.Database).
		Str("collection", collection).
		Msg("Connected to MongoDB")

	return &DB{
		client: client,
		logs:   client.Database(cfg.Database).Collection(collection),
		logger: log,
	}, nil
}

// Close releases the client. The subscriber is stopped first by the
// lifecycle so no in-flight upsert writes against a torn-down handle.
func (d *DB) Close(ctx context.Context) error {
	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	return nil
}
