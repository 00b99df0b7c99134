package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/models"
)

const queueSchema = `
	CREATE TABLE IF NOT EXISTS offline_queue (
		id           TEXT PRIMARY KEY,
		kind         TEXT NOT NULL,
		aggregate_id TEXT NOT NULL,
		base         TEXT NOT NULL,
		pending      TEXT NOT NULL,
		status       TEXT NOT NULL,
		created_at   TIMESTAMP NOT NULL,
		updated_at   TIMESTAMP NOT NULL,
		UNIQUE (kind, aggregate_id)
	);`

// sqliteQueueStore is the durable [QueueStore] used by real clients. Entries
// survive process restarts; the store serializes all access with a mutex so
// queue upserts and sync-pass rewrites never interleave on one entry.
type sqliteQueueStore struct {
	db     *sql.DB
	logger *logger.Logger

	mu sync.Mutex
}

// NewSQLiteQueueStore opens (or creates) the queue database at path and
// ensures the schema exists. Pass ":memory:" for an ephemeral store.
func NewSQLiteQueueStore(ctx context.Context, path string, log *logger.Logger) (QueueStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open queue database: %w", err)
	}
	// sqlite handles one writer at a time; a second connection would only
	// produce SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping queue database: %w", err)
	}
	if _, err = db.ExecContext(ctx, queueSchema); err != nil {
		return nil, fmt.Errorf("create queue schema: %w", err)
	}

	log.Info().Str("path", path).Msg("offline queue store opened")
	return &sqliteQueueStore{db: db, logger: log}, nil
}

func (s *sqliteQueueStore) Get(ctx context.Context, kind models.AggregateKind, aggregateID string) (models.QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(ctx, kind, aggregateID)
}

func (s *sqliteQueueStore) get(ctx context.Context, kind models.AggregateKind, aggregateID string) (models.QueueEntry, error) {
	query, args, err := sq.
		Select("id", "kind", "aggregate_id", "base", "pending", "status", "created_at", "updated_at").
		From("offline_queue").
		Where(sq.Eq{"kind": string(kind), "aggregate_id": aggregateID}).
		ToSql()
	if err != nil {
		return models.QueueEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanQueueEntry(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.QueueEntry{}, ErrEntryNotFound
	}
	if err != nil {
		return models.QueueEntry{}, err
	}
	return entry, nil
}

func (s *sqliteQueueStore) Put(ctx context.Context, entry models.QueueEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = time.Now().UTC()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = entry.UpdatedAt
	}

	query, args, err := sq.
		Insert("offline_queue").
		Columns("id", "kind", "aggregate_id", "base", "pending", "status", "created_at", "updated_at").
		Values(entry.ID, string(entry.Kind), entry.AggregateID,
			string(entry.Base), string(entry.Pending), string(entry.Status),
			entry.CreatedAt, entry.UpdatedAt).
		Suffix(`ON CONFLICT (kind, aggregate_id) DO UPDATE SET
			pending = excluded.pending,
			base = excluded.base,
			status = excluded.status,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("kind", string(entry.Kind)).
			Str("aggregate_id", entry.AggregateID).
			Msg("failed to upsert queue entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteQueueStore) Delete(ctx context.Context, kind models.AggregateKind, aggregateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query, args, err := sq.
		Delete("offline_queue").
		Where(sq.Eq{"kind": string(kind), "aggregate_id": aggregateID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteQueueStore) List(ctx context.Context) ([]models.QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query, args, err := sq.
		Select("id", "kind", "aggregate_id", "base", "pending", "status", "created_at", "updated_at").
		From("offline_queue").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.QueueEntry
	for rows.Next() {
		entry, scanErr := scanQueueEntry(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return entries, nil
}

// Close releases the underlying database handle.
func (s *sqliteQueueStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQueueEntry(row rowScanner) (models.QueueEntry, error) {
	var (
		entry         models.QueueEntry
		kind, status  string
		base, pending string
	)
	err := row.Scan(&entry.ID, &kind, &entry.AggregateID, &base, &pending,
		&status, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return models.QueueEntry{}, err
	}
	entry.Kind = models.AggregateKind(kind)
	entry.Status = models.EntryStatus(status)
	entry.Base = []byte(base)
	entry.Pending = []byte(pending)
	return entry, nil
}
