package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kwai-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the automation use case, the token validator and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc         port.AutomationUseCase
	validator   *JWTValidator
	passTimeout time.Duration
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured. Everything under
// /api/v1 requires a valid token; /healthz and /metrics are public. A manual
// pass is bounded by passTimeout, as scheduled passes are.
func NewHandler(svc port.AutomationUseCase, validator *JWTValidator, passTimeout time.Duration, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, validator: validator, passTimeout: passTimeout, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/automations", h.handleListAutomations)
		r.Post("/automations", h.handleCreateAutomation)
		r.Delete("/automations/{id}", h.handleDeleteAutomation)
		r.Get("/automations/{id}/executions", h.handleListExecutions)
		r.With(requireAdmin).Post("/automations/run", h.handleRunPass)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}
