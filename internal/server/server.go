// Package server wires the HTTP surface: router, middleware stack and
// lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pitchside/pitchside/internal/handler"
	"github.com/pitchside/pitchside/internal/metrics"
)

// Server hosts the HTTP API.
type Server struct {
	httpServer *http.Server
	apiKey     string
	jwtSecret  []byte
	detector   *SuspiciousActivityDetector
}

// Config collects the server's dependencies.
type Config struct {
	Port      int
	APIKey    string
	JWTSecret []byte
	Handler   *handler.Handler
}

// New creates a Server with its routes mounted.
func New(cfg Config) *Server {
	s := &Server{
		apiKey:    cfg.APIKey,
		jwtSecret: cfg.JWTSecret,
		detector:  NewSuspiciousActivityDetector(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(cfg.Handler),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}
	return s
}

func (s *Server) routes(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestIDMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(metrics.Middleware)
	r.Use(requestLogger)

	// Unauthenticated operational endpoints.
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Get("/version", h.Version)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		// Player-facing endpoints need a bearer credential.
		r.Group(func(r chi.Router) {
			r.Use(s.bearerAuthMiddleware)

			r.Post("/store/purchase", h.Purchase)
			r.Get("/store/catalog", h.Catalog)
			r.Get("/player/profile", h.Profile)
			r.Post("/player/attributes", h.AdjustAttribute)
			r.Get("/player/transactions", h.Transactions)
		})

		// Admin endpoints need the shared API key.
		r.Group(func(r chi.Router) {
			r.Use(s.apiKeyMiddleware)

			r.Post("/admin/players", h.RegisterPlayer)
			r.Post("/admin/catalog/reload", h.ReloadCatalog)
		})
	})

	return r
}

// Start blocks serving requests until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
