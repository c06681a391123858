// Package httptransport assembles the HTTP surface: middleware chain,
// versioned API routes, health, and metrics.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "posterati/internal/auth/handler"
	"posterati/internal/platform/metrics"
	"posterati/internal/platform/middleware"
	posterhandler "posterati/internal/poster/handler"
	"posterati/internal/transport/http/shared"
)

// RouterConfig carries the assembled dependencies for the HTTP surface.
type RouterConfig struct {
	Auth               *authhandler.Handler
	Posters            *posterhandler.Handler
	TokenVerifier      middleware.TokenVerifier
	Metrics            *metrics.Metrics
	Logger             *slog.Logger
	CORSAllowedOrigins []string
}

// NewRouter wires the full middleware chain and mounts the API under
// /api/v1, plus /healthz and /metrics outside the versioned prefix.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.Latency(cfg.Metrics))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Unmatched routes answer with the same envelope as everything else.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.WriteFail(w, http.StatusNotFound, "Url not found!")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.WriteFail(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","message":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	requireAuth := middleware.RequireAuth(cfg.TokenVerifier, cfg.Logger)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		cfg.Auth.Register(r, requireAuth)
		cfg.Posters.Register(r, requireAuth)
	})

	return r
}
