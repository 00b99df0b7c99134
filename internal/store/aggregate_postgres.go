package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/models"
)

// aggregateRepository is the PostgreSQL-backed [AggregateRepository].
// Aggregates are stored whole as JSONB documents: the delta engine works on
// full snapshots, so the server never needs to query inside an aggregate.
type aggregateRepository struct {
	*DB
	logger *logger.Logger
}

// NewAggregateRepository constructs an [AggregateRepository] backed by db.
func NewAggregateRepository(db *DB, log *logger.Logger) AggregateRepository {
	return &aggregateRepository{DB: db, logger: log}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *aggregateRepository) GetTravelPlan(ctx context.Context, id string) (models.TravelPlan, error) {
	var plan models.TravelPlan
	if err := r.getDocument(ctx, "travel_plans", id, &plan); err != nil {
		return models.TravelPlan{}, err
	}
	return plan, nil
}

func (r *aggregateRepository) SaveTravelPlan(ctx context.Context, plan models.TravelPlan) error {
	return r.saveDocument(ctx, "travel_plans", plan.ID, plan)
}

func (r *aggregateRepository) GetCostData(ctx context.Context, id string) (models.CostData, error) {
	var data models.CostData
	if err := r.getDocument(ctx, "cost_data", id, &data); err != nil {
		return models.CostData{}, err
	}
	return data, nil
}

func (r *aggregateRepository) SaveCostData(ctx context.Context, data models.CostData) error {
	return r.saveDocument(ctx, "cost_data", data.ID, data)
}

func (r *aggregateRepository) getDocument(ctx context.Context, table, id string, dest any) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("document").
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var document []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAggregateNotFound
	}
	if err != nil {
		log.Err(err).Str("table", table).Str("id", id).Msg("failed to load aggregate document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal(document, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return nil
}

func (r *aggregateRepository) saveDocument(ctx context.Context, table, id string, value any) error {
	log := logger.FromContext(ctx)

	document, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode aggregate document: %w", err)
	}

	query, args, err := psql.
		Insert(table).
		Columns("id", "document", "updated_at").
		Values(id, document, time.Now().UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("table", table).
			Str("id", id).
			Bool("retryable", r.classifier.Classify(err) == Retryable).
			Msg("failed to save aggregate document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
