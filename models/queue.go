package models

import (
	"encoding/json"
	"time"
)

// AggregateKind identifies which domain delta adapter applies to a queue
// entry's snapshots.
type AggregateKind string

const (
	KindTravelPlan AggregateKind = "travel_plan"
	KindCostData   AggregateKind = "cost_data"
)

// EntryStatus is the lifecycle state of a queue entry. A synced entry is
// deleted from the queue, so it has no status of its own.
type EntryStatus string

const (
	StatusPending  EntryStatus = "pending"
	StatusConflict EntryStatus = "conflict"
)

// QueueEntry is one not-yet-synced offline edit. Base holds the snapshot the
// edit started from and stays fixed across repeated offline edits of the same
// aggregate; Pending holds the latest edited snapshot and is replaced when a
// later edit supersedes an earlier one.
//
// Snapshots are kept in their serialized form so the queue store does not
// depend on the aggregate types; the sync service decodes them through the
// adapter matching Kind.
type QueueEntry struct {
	ID          string          `json:"id"`
	Kind        AggregateKind   `json:"kind"`
	AggregateID string          `json:"aggregate_id"`
	Base        json.RawMessage `json:"base"`
	Pending     json.RawMessage `json:"pending"`
	Status      EntryStatus     `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Clone returns a deep copy of the entry, including its raw snapshots.
func (e QueueEntry) Clone() QueueEntry {
	out := e
	if e.Base != nil {
		out.Base = make(json.RawMessage, len(e.Base))
		copy(out.Base, e.Base)
	}
	if e.Pending != nil {
		out.Pending = make(json.RawMessage, len(e.Pending))
		copy(out.Pending, e.Pending)
	}
	return out
}
