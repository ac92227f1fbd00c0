package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/FereolKpavode/CHURN/internal/domain/port"
)

// HealthHandler provides HTTP health check endpoints for the churn service.
type HealthHandler struct {
	provider  port.ClassifierProvider
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(provider port.ClassifierProvider, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		provider:  provider,
		logger:    logger,
		startTime: time.Now(),
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// ReadinessResponse is the JSON response for readiness checks.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

// RegisterRoutes registers health endpoints on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "healthy",
		Service: "churn-service",
		Uptime:  time.Since(h.startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// Readyz handles readiness probe requests. The service is ready only when
// the model artifact is loadable; without it no request can succeed.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"model": "ok"}
	statusCode := http.StatusOK
	readiness := "ready"

	if _, err := h.provider.Load(r.Context()); err != nil {
		h.logger.Warn("readiness check failed", slog.String("error", err.Error()))
		checks["model"] = err.Error()
		statusCode = http.StatusServiceUnavailable
		readiness = "not ready"
	}

	resp := ReadinessResponse{
		Status:  readiness,
		Service: "churn-service",
		Checks:  checks,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}
