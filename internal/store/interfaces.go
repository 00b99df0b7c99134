// Package store holds the persistence layers of waylight: the client-side
// offline queue (SQLite or in-memory) and the server-side aggregate
// repositories (PostgreSQL or in-memory).
package store

import (
	"context"

	"github.com/waylight/waylight/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// QueueStore is the durable local store of not-yet-synced offline edits,
// keyed by (kind, aggregate id). It is the only mutable shared resource of
// the sync engine; implementations must serialize read-modify-write access
// per entry so a QueueDelta upsert cannot race a sync pass rewrite.
type QueueStore interface {
	// Get returns the entry for (kind, aggregateID) or ErrEntryNotFound.
	Get(ctx context.Context, kind models.AggregateKind, aggregateID string) (models.QueueEntry, error)

	// Put inserts the entry or replaces the existing one for its
	// (kind, aggregate id) key.
	Put(ctx context.Context, entry models.QueueEntry) error

	// Delete removes the entry for (kind, aggregateID). Deleting a missing
	// entry is not an error.
	Delete(ctx context.Context, kind models.AggregateKind, aggregateID string) error

	// List returns a snapshot of all entries in insertion order. Mutating the
	// result does not affect the store.
	List(ctx context.Context) ([]models.QueueEntry, error)
}

// AggregateRepository is the server-side storage of aggregate documents.
type AggregateRepository interface {
	// GetTravelPlan returns the stored plan or ErrAggregateNotFound.
	GetTravelPlan(ctx context.Context, id string) (models.TravelPlan, error)

	// SaveTravelPlan inserts or replaces the stored plan by its id.
	SaveTravelPlan(ctx context.Context, plan models.TravelPlan) error

	// GetCostData returns the stored ledger or ErrAggregateNotFound.
	GetCostData(ctx context.Context, id string) (models.CostData, error)

	// SaveCostData inserts or replaces the stored ledger by its id.
	SaveCostData(ctx context.Context, data models.CostData) error
}
