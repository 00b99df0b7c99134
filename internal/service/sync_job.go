package service

import (
	"context"
	"sync"
	"time"

	"github.com/waylight/waylight/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	syncService OfflineSyncService
	opts        *SyncOptions
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a [SyncJob] that runs SyncOfflineQueue on a ticker with
// the given options. The job is idle until Start is called.
func NewSyncJob(syncService OfflineSyncService, opts *SyncOptions, log *logger.Logger) SyncJob {
	return &syncJob{syncService: syncService, opts: opts, logger: log}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches a background goroutine that drains the queue every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				summary, err := j.syncService.SyncOfflineQueue(jobCtx, j.opts)
				if err != nil {
					j.logger.Err(err).Msg("periodic sync pass failed")
					continue
				}
				j.logger.Info().
					Int("synced", summary.Synced).
					Int("conflicts", summary.Conflicts).
					Int("remaining_pending", summary.RemainingPending).
					Int("remaining_conflicts", summary.RemainingConflicts).
					Msg("periodic sync pass finished")
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
