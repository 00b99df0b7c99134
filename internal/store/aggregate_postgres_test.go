package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newMockRepository(t *testing.T) (AggregateRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := &DB{DB: mockDB, classifier: NewPostgresErrorClassifier(), logger: logger.Nop()}
	return NewAggregateRepository(db, logger.Nop()), mock
}

// ---------------------------------------------------------------------------
// TestAggregateRepository_GetTravelPlan
// ---------------------------------------------------------------------------

func TestAggregateRepository_GetTravelPlan(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		plan := models.TravelPlan{ID: "trip-1", Title: "Autumn in Japan"}
		document, err := json.Marshal(plan)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT document FROM travel_plans WHERE id = \$1`).
			WithArgs("trip-1").
			WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(document))

		got, err := repo.GetTravelPlan(context.Background(), "trip-1")
		require.NoError(t, err)
		assert.Equal(t, "Autumn in Japan", got.Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to ErrAggregateNotFound", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT document FROM travel_plans WHERE id = \$1`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"document"}))

		_, err := repo.GetTravelPlan(context.Background(), "ghost")
		require.ErrorIs(t, err, ErrAggregateNotFound)
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT document FROM travel_plans WHERE id = \$1`).
			WithArgs("trip-1").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetTravelPlan(context.Background(), "trip-1")
		require.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("corrupt document is a scan error", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT document FROM travel_plans WHERE id = \$1`).
			WithArgs("trip-1").
			WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow([]byte("{broken")))

		_, err := repo.GetTravelPlan(context.Background(), "trip-1")
		require.ErrorIs(t, err, ErrScanningRow)
	})
}

// ---------------------------------------------------------------------------
// TestAggregateRepository_SaveTravelPlan
// ---------------------------------------------------------------------------

func TestAggregateRepository_SaveTravelPlan(t *testing.T) {
	t.Run("upsert", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`INSERT INTO travel_plans \(id,document,updated_at\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \(id\) DO UPDATE SET document = excluded\.document, updated_at = excluded\.updated_at`).
			WithArgs("trip-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SaveTravelPlan(context.Background(), models.TravelPlan{ID: "trip-1", Title: "Autumn in Japan"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec failure is wrapped", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`INSERT INTO travel_plans`).
			WithArgs("trip-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(errors.New("deadlock detected"))

		err := repo.SaveTravelPlan(context.Background(), models.TravelPlan{ID: "trip-1"})
		require.ErrorIs(t, err, ErrExecutingStatement)
	})
}

// ---------------------------------------------------------------------------
// TestAggregateRepository_CostData
// ---------------------------------------------------------------------------

func TestAggregateRepository_CostData(t *testing.T) {
	t.Run("get round trip", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		data := models.CostData{ID: "trip-1", Currency: "JPY", HomeCurrency: "EUR"}
		document, err := json.Marshal(data)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT document FROM cost_data WHERE id = \$1`).
			WithArgs("trip-1").
			WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(document))

		got, err := repo.GetCostData(context.Background(), "trip-1")
		require.NoError(t, err)
		assert.Equal(t, "JPY", got.Currency)
	})

	t.Run("save upsert", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(`INSERT INTO cost_data`).
			WithArgs("trip-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SaveCostData(context.Background(), models.CostData{ID: "trip-1"})
		require.NoError(t, err)
	})
}
