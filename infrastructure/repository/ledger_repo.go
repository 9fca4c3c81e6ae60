package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"spellslinger-go/domain/ledger"
)

// ledgerDocument is the MongoDB document structure for ledger entries.
type ledgerDocument struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	RunID  string             `bson:"run_id"`
	Label  string             `bson:"label"`
	Index  int                `bson:"index"`
	Action string             `bson:"action"`
	At     time.Time          `bson:"at"`
}

// MongoLedgerRepository implements ledger.Repository using MongoDB.
type MongoLedgerRepository struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewMongoLedgerRepository creates a new MongoDB-based ledger repository.
func NewMongoLedgerRepository(db *MongoDB, logger *slog.Logger) *MongoLedgerRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoLedgerRepository{
		collection: db.Contributions(),
		logger:     logger,
	}
}

// Append stores a new entry.
func (r *MongoLedgerRepository) Append(ctx context.Context, entry *ledger.Entry) error {
	if _, err := r.collection.InsertOne(ctx, entryToDocument(entry)); err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	r.logger.Debug("Ledger entry appended", "label", entry.Label, "index", entry.Index, "action", entry.Action)
	return nil
}

// entryToDocument converts a ledger entry to a MongoDB document.
func entryToDocument(e *ledger.Entry) *ledgerDocument {
	return &ledgerDocument{
		RunID:  e.RunID,
		Label:  e.Label,
		Index:  e.Index,
		Action: string(e.Action),
		At:     e.At.UTC(),
	}
}

// Ensure MongoLedgerRepository implements ledger.Repository
var _ ledger.Repository = (*MongoLedgerRepository)(nil)
