package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/models"
)

// spySyncService counts SyncOfflineQueue passes and signals each one.
type spySyncService struct {
	passes atomic.Int64
	signal chan struct{}
}

func newSpySyncService() *spySyncService {
	return &spySyncService{signal: make(chan struct{}, 16)}
}

func (s *spySyncService) QueueTravelPlanDelta(context.Context, models.TravelPlan, models.TravelPlan) (bool, error) {
	return false, nil
}

func (s *spySyncService) QueueCostDataDelta(context.Context, models.CostData, models.CostData) (bool, error) {
	return false, nil
}

func (s *spySyncService) OfflineQueueEntries(context.Context) ([]models.QueueEntry, error) {
	return nil, nil
}

func (s *spySyncService) SyncOfflineQueue(context.Context, *SyncOptions) (models.SyncSummary, error) {
	s.passes.Add(1)
	select {
	case s.signal <- struct{}{}:
	default:
	}
	return models.SyncSummary{}, nil
}

func waitForPass(t *testing.T, spy *spySyncService) {
	t.Helper()
	select {
	case <-spy.signal:
	case <-time.After(2 * time.Second):
		t.Fatal("sync pass did not run in time")
	}
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_RunsPeriodically(t *testing.T) {
	spy := newSpySyncService()

	job := NewSyncJob(spy, nil, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	waitForPass(t, spy)
	waitForPass(t, spy)

	require.GreaterOrEqual(t, spy.passes.Load(), int64(2))
}

func TestSyncJob_StopHaltsTheJob(t *testing.T) {
	spy := newSpySyncService()

	job := NewSyncJob(spy, nil, logger.Nop())
	job.Start(context.Background(), 5*time.Millisecond)

	waitForPass(t, spy)
	job.Stop()

	// Stop on an already stopped job is safe.
	job.Stop()

	settled := spy.passes.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, settled, spy.passes.Load(), "passes must not continue after Stop")
}

func TestSyncJob_ContextCancelStopsTicker(t *testing.T) {
	spy := newSpySyncService()
	ctx, cancel := context.WithCancel(context.Background())

	job := NewSyncJob(spy, nil, logger.Nop())
	job.Start(ctx, 5*time.Millisecond)

	waitForPass(t, spy)
	cancel()

	// Stop must return promptly once the context is cancelled.
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestSyncJob_DefaultInterval(t *testing.T) {
	spy := newSpySyncService()

	job := NewSyncJob(spy, nil, logger.Nop())

	// A non-positive interval falls back to the default; with a 5 minute
	// tick no pass can fire during this test.
	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	require.Zero(t, spy.passes.Load())
}
