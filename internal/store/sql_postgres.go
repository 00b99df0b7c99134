package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/waylight/waylight/internal/config"
	"github.com/waylight/waylight/internal/logger"
)

// DB wraps the server-side database connection together with the error
// classifier repositories use to decide whether a failed operation is worth
// retrying.
type DB struct {
	*sql.DB
	classifier *PostgresErrorClassifier
	logger     *logger.Logger
}

// NewConnectPostgres opens a pgx-backed connection from cfg and verifies it
// with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Msg("error opening database connection")
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		classifier: NewPostgresErrorClassifier(),
		logger:     log,
	}, nil
}
