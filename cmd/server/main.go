package main

import (
	"context"
	"fmt"

	"github.com/waylight/waylight/internal/config"
	handler "github.com/waylight/waylight/internal/handler/http"
	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/internal/server"
	"github.com/waylight/waylight/internal/store"
	"github.com/waylight/waylight/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("waylight-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	var repo store.AggregateRepository
	if cfg.DB.DSN != "" {
		db, err := store.NewConnectPostgres(ctx, config.DB{DSN: cfg.DB.DSN}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to database")
		}
		defer db.Close()

		if err := migrations.Migrate(db.DB); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}

		repo = store.NewAggregateRepository(db, log)
	} else {
		log.Info().Msg("no database DSN provided, serving from memory")
		repo = store.NewMemoryAggregateRepository()
	}

	handlers := handler.NewHandler(repo, log)

	srv, err := server.NewServer(
		handlers.Init(),
		config.Server{HTTPAddress: cfg.HTTPAddress, RequestTimeout: cfg.RequestTimeout},
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
