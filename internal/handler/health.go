package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// HealthChecker probes the record store.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler exposes a readiness probe. DB is nil when serving fixtures
// from memory.
type HealthHandler struct {
	DB         HealthChecker
	DataSource string
}

func (h HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)
}

func (h HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	if h.DB != nil {
		if err := h.DB.Health(ctx); err != nil {
			status = "degraded"
		}
	}
	writeRawJSON(w, http.StatusOK, map[string]string{
		"status":     status,
		"dataSource": h.DataSource,
	})
}
