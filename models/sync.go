package models

// SyncSummary reports the outcome of one pass over the offline queue.
// Entries whose network calls failed are neither synced nor conflicted; they
// stay pending and show up in RemainingPending.
type SyncSummary struct {
	Synced             int `json:"synced"`
	Conflicts          int `json:"conflicts"`
	RemainingPending   int `json:"remaining_pending"`
	RemainingConflicts int `json:"remaining_conflicts"`
}

// Conflict is handed to the caller's OnConflict callback when the server
// snapshot no longer matches a queue entry's base snapshot.
//
// PendingDelta is the delta between the entry's original base and its pending
// snapshot: exactly what the user changed, independent of what the server
// changed. Its concrete type matches Kind (*delta.TravelPlanDelta or
// *delta.CostDataDelta).
type Conflict struct {
	Kind         AggregateKind `json:"kind"`
	AggregateID  string        `json:"aggregate_id"`
	PendingDelta any           `json:"pending_delta"`
}
