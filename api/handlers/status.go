// ABOUTME: Status handlers for health checks and content store diagnostics
// ABOUTME: Diagnostics always hit the upstream and are never cached

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"portfolio-api/api/dto/mappers"
	"portfolio-api/api/dto/responses"
	"portfolio-api/core/content"
)

// ContentDiagnoser runs a live check against the content store
type ContentDiagnoser interface {
	Diagnose(ctx context.Context) content.Diagnostics
}

// StatusHandler handles health and diagnostics requests
type StatusHandler struct {
	diagnoser ContentDiagnoser
}

// NewStatusHandler creates a new status handler. A nil diagnoser registers
// only the health route.
func NewStatusHandler(diagnoser ContentDiagnoser) *StatusHandler {
	return &StatusHandler{diagnoser: diagnoser}
}

// RegisterRoutes registers the status routes
func (h *StatusHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness check",
		Tags:        []string{"Status"},
	}, h.Health)

	if h.diagnoser == nil {
		return
	}

	huma.Register(api, huma.Operation{
		OperationID: "contentStatus",
		Method:      http.MethodGet,
		Path:        "/status/content",
		Summary:     "Content store diagnostics",
		Description: "Fetches articles and projects bypassing the cache and reports which settings are present.",
		Tags:        []string{"Status"},
	}, h.ContentStatus)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body struct {
		Status string `json:"status" example:"ok"`
	}
}

// Health handles GET /health
func (h *StatusHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "ok"
	return out, nil
}

// ContentStatusOutput defines the output for the ContentStatus operation
type ContentStatusOutput struct {
	CacheControl string `header:"Cache-Control"`
	Pragma       string `header:"Pragma"`
	Expires      string `header:"Expires"`
	Body         responses.ContentStatusResponse
}

// ContentStatus handles GET /status/content
func (h *StatusHandler) ContentStatus(ctx context.Context, _ *struct{}) (*ContentStatusOutput, error) {
	diagnostics := h.diagnoser.Diagnose(ctx)
	return &ContentStatusOutput{
		CacheControl: "no-cache, no-store, must-revalidate",
		Pragma:       "no-cache",
		Expires:      "0",
		Body:         mappers.ToContentStatusResponse(diagnostics),
	}, nil
}
