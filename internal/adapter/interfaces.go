// Package adapter provides the transport layer between the sync engine and
// the waylight server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]); transport-level failures are
// mapped to the sentinel values in errors.go so callers can use [errors.Is]
// without knowing about HTTP status codes.
package adapter

import (
	"context"

	"github.com/waylight/waylight/internal/delta"
	"github.com/waylight/waylight/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the waylight
// server. Implementations are responsible for serialization, auth header
// management, and error mapping.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// The engine never mints or inspects tokens; it only forwards what the
	// caller obtained elsewhere.
	SetToken(token string)

	// FetchTravelPlan retrieves the current server snapshot of the travel
	// plan identified by id. Returns ErrNotFound (wrapped) when the server
	// has no such aggregate.
	FetchTravelPlan(ctx context.Context, id string) (models.TravelPlan, error)

	// PatchTravelPlan submits a partial update for the travel plan
	// identified by id. The server applies the delta to its current
	// snapshot; the adapter returns an error unless the server reports
	// success.
	PatchTravelPlan(ctx context.Context, id string, d *delta.TravelPlanDelta) error

	// FetchCostData retrieves the current server snapshot of the cost
	// ledger identified by id.
	FetchCostData(ctx context.Context, id string) (models.CostData, error)

	// PatchCostData submits a partial update for the cost ledger identified
	// by id.
	PatchCostData(ctx context.Context, id string, d *delta.CostDataDelta) error
}
