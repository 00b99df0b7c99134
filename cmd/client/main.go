package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/waylight/waylight/internal/adapter"
	"github.com/waylight/waylight/internal/config"
	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/internal/service"
	"github.com/waylight/waylight/internal/store"
	"github.com/waylight/waylight/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("waylight-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	queue, err := store.NewSQLiteQueueStore(ctx, cfg.Storage.Queue.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening offline queue")
	}
	if closer, ok := queue.(io.Closer); ok {
		defer closer.Close()
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)

	syncService := service.NewOfflineSyncService(queue, serverAdapter, log)

	opts := &service.SyncOptions{
		OnConflict: func(c models.Conflict) {
			log.Warn().
				Str("kind", string(c.Kind)).
				Str("aggregate_id", c.AggregateID).
				Msg("offline edit conflicts with server state")
		},
	}

	job := service.NewSyncJob(syncService, opts, log)
	job.Start(ctx, cfg.Workers.SyncInterval)

	<-ctx.Done()
	job.Stop()
	log.Info().Msg("sync client stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
