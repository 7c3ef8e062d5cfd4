// Package apiserver provides the JSON API HTTP server for the annotation service
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/forkful/garnish/internal/infrastructure/config"
	"github.com/forkful/garnish/internal/infrastructure/http/handlers"
	"github.com/forkful/garnish/internal/infrastructure/http/middleware"
	"github.com/forkful/garnish/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// APIServer serves the annotation API
type APIServer struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	router   *chi.Mux
	service  inbound.AnnotationService
	registry *prometheus.Registry
}

// New creates a new API server instance
func New(cfg *config.Config, log *zap.Logger, service inbound.AnnotationService) *APIServer {
	s := &APIServer{
		config:   cfg,
		logger:   log,
		service:  service,
		registry: prometheus.NewRegistry(),
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// Router exposes the configured router, mainly for handler tests
func (s *APIServer) Router() http.Handler {
	return s.router
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics(s.registry)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(metrics.Handler())
	r.Use(middleware.RateLimit(s.config.RateLimit.RequestsPerMin, s.config.RateLimit.BurstSize))

	r.Get("/health", s.handleHealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONOnly())

		h := handlers.NewAnnotationHandlers(s.service, s.logger)

		r.Route("/annotate", func(r chi.Router) {
			r.Post("/ingredient", h.AnnotateIngredient)
			r.Post("/recipe", h.AnnotateRecipe)
		})
		r.Post("/parse/notes", h.ParseNotes)
		r.Route("/format", func(r chi.Router) {
			r.Post("/amount", h.FormatAmount)
			r.Post("/direction", h.FormatDirection)
		})
	})

	return r
}

// handleHealthCheck handles GET /health
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","service":%q,"version":%q,"timestamp":%d}`,
		s.config.App.Name, s.config.App.Version, time.Now().Unix())
}

// Start begins serving requests. It returns once the listener is running;
// serve errors other than a clean shutdown are logged.
func (s *APIServer) Start() {
	s.logger.Info("Starting API server",
		zap.String("addr", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("API server stopped unexpectedly", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts the server down
func (s *APIServer) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
