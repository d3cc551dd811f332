// Package handler provides HTTP handlers for all API endpoints.
// Every request fetches ESPN once; nothing is cached or stored.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/scoracle-splits/internal/api/respond"
	"github.com/albapepper/scoracle-splits/internal/predict"
	"github.com/albapepper/scoracle-splits/internal/splits"
)

// SplitsSource fetches and normalizes splits. *splits.Service implements it.
type SplitsSource interface {
	FetchAndNormalize(ctx context.Context, playerID string) (*splits.NormalizedSplits, error)
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	splits    SplitsSource
	predictor *predict.Predictor
	logger    *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(source SplitsSource, predictor *predict.Predictor, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if predictor == nil {
		predictor = predict.New(logger)
	}
	return &Handler{
		splits:    source,
		predictor: predictor,
		logger:    logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Scoracle Splits API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
