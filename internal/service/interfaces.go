// Package service implements the offline pending-operation queue and the
// synchronization protocol that drains it against the waylight server.
package service

import (
	"context"
	"time"

	"github.com/waylight/waylight/models"
)

// SyncOptions tunes one pass over the offline queue.
type SyncOptions struct {
	// OnConflict, when non-nil, is invoked once per entry whose base
	// snapshot no longer matches the server. The callback receives what the
	// user changed (base → pending), independent of what the server changed,
	// so the caller can surface or reconcile both sides.
	OnConflict func(models.Conflict)
}

// OfflineSyncService queues offline aggregate edits and reconciles them with
// the server under optimistic concurrency.
type OfflineSyncService interface {
	// QueueTravelPlanDelta stores an offline travel-plan edit. base is the
	// snapshot the edit started from, pending the edited snapshot. Reports
	// whether anything was queued: a no-change edit queues nothing.
	//
	// A second edit of the same plan replaces the pending snapshot while the
	// original base is preserved, so conflict detection keeps comparing
	// against the last server-confirmed state.
	QueueTravelPlanDelta(ctx context.Context, base, pending models.TravelPlan) (bool, error)

	// QueueCostDataDelta is QueueTravelPlanDelta for the cost ledger.
	QueueCostDataDelta(ctx context.Context, base, pending models.CostData) (bool, error)

	// OfflineQueueEntries returns a read-only snapshot of the queue,
	// including conflicted entries, for display.
	OfflineQueueEntries(ctx context.Context) ([]models.QueueEntry, error)

	// SyncOfflineQueue runs one pass over the queue. Every entry is handled
	// independently: the server snapshot is fetched, compared against the
	// entry's base, and the entry is either patched remotely and removed, or
	// marked as a conflict. Entries whose network calls fail stay pending
	// for the next pass.
	//
	// Cancelling ctx aborts the pass between entries; entries not yet
	// processed keep their prior status.
	SyncOfflineQueue(ctx context.Context, opts *SyncOptions) (models.SyncSummary, error)
}

// SyncJob periodically runs SyncOfflineQueue in the background.
type SyncJob interface {
	// Start launches the periodic sync. A non-positive interval falls back
	// to a default. Calling Start again restarts the job.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit. Safe
	// to call when the job is not running.
	Stop()
}
