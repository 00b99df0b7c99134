package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires all routes and middleware into a chi router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/travel-plan", h.getTravelPlan)
	router.Patch("/api/travel-plan", h.patchTravelPlan)
	router.Get("/api/cost-data", h.getCostData)
	router.Patch("/api/cost-data", h.patchCostData)

	return router
}
