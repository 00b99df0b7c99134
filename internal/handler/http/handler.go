// Package http exposes the aggregate read/patch endpoints of the waylight
// server:
//
//	GET   /api/travel-plan?id=<id>   full travel-plan snapshot
//	PATCH /api/travel-plan?id=<id>   apply a travel-plan delta
//	GET   /api/cost-data?id=<id>     full cost-ledger snapshot
//	PATCH /api/cost-data?id=<id>     apply a cost-ledger delta
//
// PATCH bodies are shape-validated before any merge; a malformed delta is
// rejected with 400 and never reaches the delta engine.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/internal/store"
)

// Handler carries the dependencies of all HTTP endpoints.
type Handler struct {
	repo   store.AggregateRepository
	logger *logger.Logger
}

// NewHandler constructs the server's HTTP handler set.
func NewHandler(repo store.AggregateRepository, log *logger.Logger) *Handler {
	log.Info().Msg("http handler created")
	return &Handler{repo: repo, logger: log}
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
