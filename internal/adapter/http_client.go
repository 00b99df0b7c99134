package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/waylight/waylight/internal/delta"
	"github.com/waylight/waylight/internal/logger"
	"github.com/waylight/waylight/models"
)

// HTTPClientConfig carries the settings of the REST adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs the HTTP/REST [ServerAdapter].
func NewHTTPServerAdapter(cfg HTTPClientConfig, log *logger.Logger) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli, logger: log}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) FetchTravelPlan(ctx context.Context, id string) (models.TravelPlan, error) {
	var plan models.TravelPlan
	if err := h.fetchAggregate(ctx, "/api/travel-plan", id, &plan); err != nil {
		return models.TravelPlan{}, err
	}
	return plan, nil
}

func (h *httpServerAdapter) PatchTravelPlan(ctx context.Context, id string, d *delta.TravelPlanDelta) error {
	return h.patchAggregate(ctx, "/api/travel-plan", id, d)
}

func (h *httpServerAdapter) FetchCostData(ctx context.Context, id string) (models.CostData, error) {
	var data models.CostData
	if err := h.fetchAggregate(ctx, "/api/cost-data", id, &data); err != nil {
		return models.CostData{}, err
	}
	return data, nil
}

func (h *httpServerAdapter) PatchCostData(ctx context.Context, id string, d *delta.CostDataDelta) error {
	return h.patchAggregate(ctx, "/api/cost-data", id, d)
}

func (h *httpServerAdapter) fetchAggregate(ctx context.Context, endpoint, id string, dest any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("id", id).
		Get(endpoint)
	if err != nil {
		return fmt.Errorf("fetch %s request: %w", endpoint, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), dest); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (h *httpServerAdapter) patchAggregate(ctx context.Context, endpoint, id string, d any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("id", id).
		SetBody(d).
		Patch(endpoint)
	if err != nil {
		return fmt.Errorf("patch %s request: %w", endpoint, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var pr models.PatchResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return fmt.Errorf("decode %s patch response: %w", endpoint, err)
	}
	if !pr.Success {
		return ErrRejected
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: http %d", ErrRejected, code)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
