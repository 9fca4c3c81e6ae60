// Package ledger defines the contribution ledger: an append-only audit of
// samples saved and removed by capture runs. The dataset directories stay
// authoritative; the ledger is never read back into a session.
package ledger

import (
	"context"
	"time"
)

// Action is what happened to a sample.
type Action string

const (
	ActionSaved   Action = "saved"
	ActionRemoved Action = "removed"
)

// Entry records one sample change.
type Entry struct {
	// RunID identifies the capture run that made the change
	RunID string

	// Label is the label display name
	Label string

	// Index is the sample sequence number
	Index int

	Action Action

	At time.Time
}

// Repository persists ledger entries.
type Repository interface {
	// Append stores a new entry.
	Append(ctx context.Context, entry *Entry) error
}

// NopRepository discards all entries. It is used when no ledger is configured.
type NopRepository struct{}

func (NopRepository) Append(context.Context, *Entry) error { return nil }

var _ Repository = NopRepository{}
