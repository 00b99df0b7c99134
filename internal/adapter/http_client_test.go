package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waylight/waylight/internal/delta"
	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger.Nop())
}

// ---------------------------------------------------------------------------
// TestHTTPServerAdapter_Fetch
// ---------------------------------------------------------------------------

func TestHTTPServerAdapter_FetchTravelPlan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/travel-plan", r.URL.Path)
			assert.Equal(t, "trip-1", r.URL.Query().Get("id"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.TravelPlan{ID: "trip-1", Title: "Autumn in Japan"})
		})

		plan, err := a.FetchTravelPlan(context.Background(), "trip-1")
		require.NoError(t, err)
		assert.Equal(t, "Autumn in Japan", plan.Title)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such plan", http.StatusNotFound)
		})

		_, err := a.FetchTravelPlan(context.Background(), "ghost")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("401 maps to ErrUnauthorized", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "token expired", http.StatusUnauthorized)
		})

		_, err := a.FetchCostData(context.Background(), "trip-1")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unreachable server is a transport error", func(t *testing.T) {
		a := NewHTTPServerAdapter(HTTPClientConfig{
			BaseURL: "http://127.0.0.1:1",
			Timeout: 500 * time.Millisecond,
		}, logger.Nop())

		_, err := a.FetchTravelPlan(context.Background(), "trip-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

// ---------------------------------------------------------------------------
// TestHTTPServerAdapter_Patch
// ---------------------------------------------------------------------------

func TestHTTPServerAdapter_PatchTravelPlan(t *testing.T) {
	t.Run("sends the delta body and accepts success", func(t *testing.T) {
		var gotBody []byte
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "trip-1", r.URL.Query().Get("id"))

			var err error
			gotBody, err = io.ReadAll(r.Body)
			require.NoError(t, err)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.PatchResponse{Success: true})
		})

		d := &delta.TravelPlanDelta{Title: delta.Value("Updated Trip Title")}
		err := a.PatchTravelPlan(context.Background(), "trip-1", d)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Updated Trip Title"}`, string(gotBody))
	})

	t.Run("success=false maps to ErrRejected", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.PatchResponse{Success: false})
		})

		err := a.PatchCostData(context.Background(), "trip-1", &delta.CostDataDelta{Currency: delta.Value("USD")})
		require.ErrorIs(t, err, ErrRejected)
	})

	t.Run("400 maps to ErrRejected", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "malformed delta", http.StatusBadRequest)
		})

		err := a.PatchTravelPlan(context.Background(), "trip-1", &delta.TravelPlanDelta{})
		require.ErrorIs(t, err, ErrRejected)
	})
}

// ---------------------------------------------------------------------------
// TestHTTPServerAdapter_Token
// ---------------------------------------------------------------------------

func TestHTTPServerAdapter_Token(t *testing.T) {
	t.Run("no token means no Authorization header", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.TravelPlan{ID: "trip-1"})
		})

		_, err := a.FetchTravelPlan(context.Background(), "trip-1")
		require.NoError(t, err)
	})

	t.Run("token is forwarded as a bearer header", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.TravelPlan{ID: "trip-1"})
		})

		a.SetToken("  secret-token  ")
		_, err := a.FetchTravelPlan(context.Background(), "trip-1")
		require.NoError(t, err)
	})
}
