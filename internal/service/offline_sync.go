package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waylight/waylight/internal/adapter"
	"github.com/waylight/waylight/internal/delta"
	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/internal/store"
	"github.com/waylight/waylight/models"
)

type offlineSyncService struct {
	queue   store.QueueStore
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewOfflineSyncService constructs an [OfflineSyncService] on top of the
// given queue store and server adapter.
func NewOfflineSyncService(queue store.QueueStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) OfflineSyncService {
	return &offlineSyncService{
		queue:   queue,
		adapter: serverAdapter,
		logger:  log,
	}
}

func (s *offlineSyncService) QueueTravelPlanDelta(ctx context.Context, base, pending models.TravelPlan) (bool, error) {
	if base.ID != pending.ID {
		return false, fmt.Errorf("queue travel plan delta: base id %q and pending id %q differ", base.ID, pending.ID)
	}
	return queueDelta(ctx, s, models.KindTravelPlan, pending.ID, base, pending,
		delta.CreateTravelPlanDelta)
}

func (s *offlineSyncService) QueueCostDataDelta(ctx context.Context, base, pending models.CostData) (bool, error) {
	if base.ID != pending.ID {
		return false, fmt.Errorf("queue cost data delta: base id %q and pending id %q differ", base.ID, pending.ID)
	}
	return queueDelta(ctx, s, models.KindCostData, pending.ID, base, pending,
		delta.CreateCostDataDelta)
}

func (s *offlineSyncService) OfflineQueueEntries(ctx context.Context) ([]models.QueueEntry, error) {
	entries, err := s.queue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list offline queue: %w", err)
	}
	return entries, nil
}

// queueDelta upserts one offline edit. The emptiness check runs against the
// entry's effective base: the stored original base when an entry already
// exists, the caller's base otherwise. An edit that reverts the aggregate
// back to its base removes the entry instead of queueing a no-op.
func queueDelta[A any, D any](
	ctx context.Context,
	s *offlineSyncService,
	kind models.AggregateKind,
	aggregateID string,
	base, pending A,
	create func(A, A) (*D, error),
) (bool, error) {
	existing, err := s.queue.Get(ctx, kind, aggregateID)
	exists := err == nil
	if err != nil && !errors.Is(err, store.ErrEntryNotFound) {
		return false, fmt.Errorf("load queue entry: %w", err)
	}

	effectiveBase := base
	if exists {
		if err = json.Unmarshal(existing.Base, &effectiveBase); err != nil {
			return false, fmt.Errorf("decode stored base snapshot: %w", err)
		}
	}

	d, err := create(effectiveBase, pending)
	if err != nil {
		return false, fmt.Errorf("compute delta: %w", err)
	}
	if d == nil {
		if exists {
			if err = s.queue.Delete(ctx, kind, aggregateID); err != nil {
				return false, fmt.Errorf("remove reverted queue entry: %w", err)
			}
		}
		return false, nil
	}

	pendingRaw, err := json.Marshal(pending)
	if err != nil {
		return false, fmt.Errorf("encode pending snapshot: %w", err)
	}

	now := time.Now().UTC()
	entry := existing
	if !exists {
		baseRaw, encErr := json.Marshal(base)
		if encErr != nil {
			return false, fmt.Errorf("encode base snapshot: %w", encErr)
		}
		entry = models.QueueEntry{
			ID:          uuid.NewString(),
			Kind:        kind,
			AggregateID: aggregateID,
			Base:        baseRaw,
			Status:      models.StatusPending,
			CreatedAt:   now,
		}
	}
	entry.Pending = pendingRaw
	entry.UpdatedAt = now

	if err = s.queue.Put(ctx, entry); err != nil {
		return false, fmt.Errorf("store queue entry: %w", err)
	}

	s.logger.Debug().
		Str("kind", string(kind)).
		Str("aggregate_id", aggregateID).
		Bool("superseded", exists).
		Msg("offline edit queued")
	return true, nil
}

type entryOutcome int

const (
	outcomeStillPending entryOutcome = iota
	outcomeSynced
	outcomeConflict
)

func (s *offlineSyncService) SyncOfflineQueue(ctx context.Context, opts *SyncOptions) (models.SyncSummary, error) {
	entries, err := s.queue.List(ctx)
	if err != nil {
		return models.SyncSummary{}, fmt.Errorf("list offline queue: %w", err)
	}

	var summary models.SyncSummary
	for _, entry := range entries {
		// An aborted pass must leave unprocessed entries exactly as they
		// were.
		if ctx.Err() != nil {
			break
		}

		var outcome entryOutcome
		switch entry.Kind {
		case models.KindTravelPlan:
			outcome = syncEntry(ctx, s, entry, opts,
				s.adapter.FetchTravelPlan, s.adapter.PatchTravelPlan, delta.CreateTravelPlanDelta)
		case models.KindCostData:
			outcome = syncEntry(ctx, s, entry, opts,
				s.adapter.FetchCostData, s.adapter.PatchCostData, delta.CreateCostDataDelta)
		default:
			s.logger.Warn().
				Str("kind", string(entry.Kind)).
				Str("aggregate_id", entry.AggregateID).
				Msg("queue entry with unknown kind left untouched")
			continue
		}

		switch outcome {
		case outcomeSynced:
			summary.Synced++
		case outcomeConflict:
			summary.Conflicts++
		}
	}

	remaining, err := s.queue.List(ctx)
	if err != nil {
		return summary, fmt.Errorf("recount offline queue: %w", err)
	}
	for _, entry := range remaining {
		if entry.Status == models.StatusConflict {
			summary.RemainingConflicts++
		} else {
			summary.RemainingPending++
		}
	}
	return summary, nil
}

// syncEntry reconciles a single queue entry. Outcomes are independent per
// entry: a transport failure leaves the entry for the next pass and is
// neither a sync nor a conflict.
func syncEntry[A any, D any](
	ctx context.Context,
	s *offlineSyncService,
	entry models.QueueEntry,
	opts *SyncOptions,
	fetch func(context.Context, string) (A, error),
	patch func(context.Context, string, *D) error,
	create func(A, A) (*D, error),
) entryOutcome {
	log := s.logger.With().
		Str("kind", string(entry.Kind)).
		Str("aggregate_id", entry.AggregateID).
		Logger()

	var base, pending A
	if err := json.Unmarshal(entry.Base, &base); err != nil {
		log.Err(err).Msg("undecodable base snapshot, entry left for inspection")
		return outcomeStillPending
	}
	if err := json.Unmarshal(entry.Pending, &pending); err != nil {
		log.Err(err).Msg("undecodable pending snapshot, entry left for inspection")
		return outcomeStillPending
	}

	server, err := fetch(ctx, entry.AggregateID)
	if err != nil {
		log.Warn().Err(err).Msg("server snapshot fetch failed, entry stays pending")
		return outcomeStillPending
	}

	unchanged, err := delta.Equal(server, base)
	if err != nil {
		log.Err(err).Msg("snapshot comparison failed, entry stays pending")
		return outcomeStillPending
	}

	if !unchanged {
		entry.Status = models.StatusConflict
		entry.UpdatedAt = time.Now().UTC()
		if putErr := s.queue.Put(ctx, entry); putErr != nil {
			log.Err(putErr).Msg("failed to mark queue entry conflicted")
			return outcomeStillPending
		}
		log.Info().Msg("server diverged from base snapshot, entry marked conflicted")

		if opts != nil && opts.OnConflict != nil {
			pendingDelta, deltaErr := create(base, pending)
			if deltaErr != nil {
				log.Err(deltaErr).Msg("failed to compute pending delta for conflict callback")
			} else {
				opts.OnConflict(models.Conflict{
					Kind:         entry.Kind,
					AggregateID:  entry.AggregateID,
					PendingDelta: pendingDelta,
				})
			}
		}
		return outcomeConflict
	}

	d, err := create(base, pending)
	if err != nil {
		log.Err(err).Msg("failed to compute delta, entry stays pending")
		return outcomeStillPending
	}
	if d != nil {
		if err = patch(ctx, entry.AggregateID, d); err != nil {
			log.Warn().Err(err).Msg("delta submission failed, entry stays pending")
			return outcomeStillPending
		}
	}
	// d == nil: base and pending converged, the server already holds the
	// desired state.

	if err = s.queue.Delete(ctx, entry.Kind, entry.AggregateID); err != nil {
		log.Err(err).Msg("failed to remove synced queue entry")
		return outcomeStillPending
	}
	log.Info().Msg("offline edit synced")
	return outcomeSynced
}
