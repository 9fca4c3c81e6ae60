// Package repository provides the MongoDB-backed contribution ledger.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DefaultURI is the ledger server used when none is configured.
	DefaultURI = "mongodb://localhost:27017"
	// DefaultDatabase holds the ledger collections.
	DefaultDatabase = "spellslinger"
	// ContributionsCollection receives one document per saved or removed sample.
	ContributionsCollection = "rune_contributions"

	// appName identifies capture sessions in the server's connection list.
	appName = "spellslinger"
)

// MongoDB is the ledger database connection.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *slog.Logger
}

// MongoDBConfig contains configuration for the ledger connection.
type MongoDBConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	PingTimeout    time.Duration
}

// DefaultMongoDBConfig returns default configuration.
func DefaultMongoDBConfig() *MongoDBConfig {
	return &MongoDBConfig{
		URI:            DefaultURI,
		Database:       DefaultDatabase,
		ConnectTimeout: 10 * time.Second,
		PingTimeout:    5 * time.Second,
	}
}

// clientOptions builds the driver options for a capture session.
// Ledger writes are small and fire-and-forget, so the driver gives up on
// server selection within the ping budget instead of its 30s default.
func (c *MongoDBConfig) clientOptions() *options.ClientOptions {
	return options.Client().
		ApplyURI(c.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(c.PingTimeout)
}

// NewMongoDB connects to the ledger database and verifies it is reachable.
func NewMongoDB(ctx context.Context, cfg *MongoDBConfig, logger *slog.Logger) (*MongoDB, error) {
	if cfg == nil {
		cfg = DefaultMongoDBConfig()
	}
	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}
	if logger == nil {
		logger = slog.Default()
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, cfg.clientOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ledger database: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping ledger database: %w", err)
	}

	logger.Info("Connected to ledger database", "database", cfg.Database, "collection", ContributionsCollection)

	return &MongoDB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   logger,
	}, nil
}

// Close disconnects from MongoDB.
func (m *MongoDB) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

// Contributions returns the ledger collection.
func (m *MongoDB) Contributions() *mongo.Collection {
	return m.database.Collection(ContributionsCollection)
}

// EnsureIndexes creates the indexes used to review a run or a label's history.
// Creating an index that already exists is a no-op on the server.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	names, err := m.Contributions().Indexes().CreateMany(ctx, contributionIndexes())
	if err != nil {
		return fmt.Errorf("failed to create ledger indexes: %w", err)
	}
	m.logger.Debug("Ledger indexes ready", "indexes", names)
	return nil
}

func contributionIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "run_id", Value: 1}, {Key: "at", Value: 1}},
			Options: options.Index().SetName("run_at"),
		},
		{
			Keys:    bson.D{{Key: "label", Value: 1}, {Key: "index", Value: 1}},
			Options: options.Index().SetName("label_index"),
		},
	}
}
