package server

import (
	"log/slog"
	"net/http"
	"time"

	"erpviews-backend/internal/config"
	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Health    handler.HealthHandler
	Auth      handler.AuthHandler
	Docs      handler.DocsHandler
	Views     handler.ViewHandler
	Inventory handler.InventoryHandler
	Approvals handler.ApprovalHandler
	Badges    handler.BadgeHandler
	Jobs      handler.JobHandler
	Rules     handler.RuleHandler
	Edits     handler.EditHandler
}

// NewRouter wires HTTP routes and middleware.
func NewRouter(cfg config.Config, logger *slog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	}

	h.Health.RegisterRoutes(r)
	h.Auth.RegisterRoutes(r)
	h.Docs.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(cfg.JWTSecret))
		// staff-level (staff/manager/admin)
		pr.Group(func(sr chi.Router) {
			sr.Use(RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleStaff))
			h.Views.RegisterRoutes(sr)
			h.Inventory.RegisterRoutes(sr)
			h.Approvals.RegisterRoutes(sr)
			h.Badges.RegisterRoutes(sr)
			h.Jobs.RegisterRoutes(sr)
		})
		// manager-level (manager/admin)
		pr.Group(func(mr chi.Router) {
			mr.Use(RequireRole(domain.RoleAdmin, domain.RoleManager))
			h.Inventory.RegisterManagerRoutes(mr)
			h.Jobs.RegisterManagerRoutes(mr)
			h.Rules.RegisterRoutes(mr)
			h.Edits.RegisterRoutes(mr)
		})
	})

	return r
}
