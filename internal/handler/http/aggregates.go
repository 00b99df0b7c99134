package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/waylight/waylight/internal/delta"
	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/internal/store"
	"github.com/waylight/waylight/internal/validators"
	"github.com/waylight/waylight/models"
)

func (h *Handler) getTravelPlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	plan, err := h.repo.GetTravelPlan(r.Context(), id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error loading travel plan")
		http.Error(w, "error loading travel plan", statusFromError(err))
		return
	}

	writeJSON(w, plan, http.StatusOK)
}

func (h *Handler) patchTravelPlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}
	if !validators.IsTravelPlanDelta(body) {
		log.Warn().Str("id", id).Msg("malformed travel plan delta rejected")
		http.Error(w, "malformed travel plan delta", http.StatusBadRequest)
		return
	}

	var d delta.TravelPlanDelta
	if err = json.Unmarshal(body, &d); err != nil {
		log.Err(err).Str("id", id).Msg("undecodable travel plan delta")
		http.Error(w, "malformed travel plan delta", http.StatusBadRequest)
		return
	}

	plan, err := h.repo.GetTravelPlan(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error loading travel plan for patch")
		http.Error(w, "error loading travel plan", statusFromError(err))
		return
	}

	patched, err := delta.ApplyTravelPlanDelta(plan, &d)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error applying travel plan delta")
		http.Error(w, "error applying travel plan delta", http.StatusInternalServerError)
		return
	}

	if err = h.repo.SaveTravelPlan(ctx, patched); err != nil {
		log.Err(err).Str("id", id).Msg("error saving patched travel plan")
		http.Error(w, "error saving travel plan", http.StatusInternalServerError)
		return
	}

	writeJSON(w, models.PatchResponse{Success: true}, http.StatusOK)
}

func (h *Handler) getCostData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	data, err := h.repo.GetCostData(r.Context(), id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error loading cost data")
		http.Error(w, "error loading cost data", statusFromError(err))
		return
	}

	writeJSON(w, data, http.StatusOK)
}

func (h *Handler) patchCostData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}
	if !validators.IsCostDataDelta(body) {
		log.Warn().Str("id", id).Msg("malformed cost data delta rejected")
		http.Error(w, "malformed cost data delta", http.StatusBadRequest)
		return
	}

	var d delta.CostDataDelta
	if err = json.Unmarshal(body, &d); err != nil {
		log.Err(err).Str("id", id).Msg("undecodable cost data delta")
		http.Error(w, "malformed cost data delta", http.StatusBadRequest)
		return
	}

	data, err := h.repo.GetCostData(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error loading cost data for patch")
		http.Error(w, "error loading cost data", statusFromError(err))
		return
	}

	patched, err := delta.ApplyCostDataDelta(data, &d)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error applying cost data delta")
		http.Error(w, "error applying cost data delta", http.StatusInternalServerError)
		return
	}

	if err = h.repo.SaveCostData(ctx, patched); err != nil {
		log.Err(err).Str("id", id).Msg("error saving patched cost data")
		http.Error(w, "error saving cost data", http.StatusInternalServerError)
		return
	}

	writeJSON(w, models.PatchResponse{Success: true}, http.StatusOK)
}

func statusFromError(err error) int {
	if errors.Is(err, store.ErrAggregateNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
