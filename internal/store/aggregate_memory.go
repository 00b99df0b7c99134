package store

import (
	"context"
	"sync"

	"github.com/waylight/waylight/models"
)

// memoryAggregateRepository is an in-memory [AggregateRepository] used by
// handler tests and the dev-mode server.
type memoryAggregateRepository struct {
	mu    sync.RWMutex
	plans map[string]models.TravelPlan
	costs map[string]models.CostData
}

// NewMemoryAggregateRepository constructs an empty in-memory repository.
func NewMemoryAggregateRepository() AggregateRepository {
	return &memoryAggregateRepository{
		plans: make(map[string]models.TravelPlan),
		costs: make(map[string]models.CostData),
	}
}

func (r *memoryAggregateRepository) GetTravelPlan(_ context.Context, id string) (models.TravelPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, exists := r.plans[id]
	if !exists {
		return models.TravelPlan{}, ErrAggregateNotFound
	}
	return plan.Clone(), nil
}

func (r *memoryAggregateRepository) SaveTravelPlan(_ context.Context, plan models.TravelPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plans[plan.ID] = plan.Clone()
	return nil
}

func (r *memoryAggregateRepository) GetCostData(_ context.Context, id string) (models.CostData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.costs[id]
	if !exists {
		return models.CostData{}, ErrAggregateNotFound
	}
	return data.Clone(), nil
}

func (r *memoryAggregateRepository) SaveCostData(_ context.Context, data models.CostData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.costs[data.ID] = data.Clone()
	return nil
}
