// Package server provides the HTTP server for the recommendation API
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/platewise/backend/internal/infrastructure/config"
	"github.com/platewise/backend/internal/infrastructure/http/handlers"
	"github.com/platewise/backend/internal/infrastructure/http/middleware"
	"github.com/platewise/backend/internal/ports/inbound"
	"github.com/platewise/backend/pkg/healthcheck"
)

// Server represents the HTTP server
type Server struct {
	config          *config.Config
	logger          *zap.Logger
	router          *chi.Mux
	server          *http.Server
	recommendations inbound.RecommendationService
	suggestions     inbound.SuggestionService
	voice           inbound.VoiceService
	health          *healthcheck.HealthCheck
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	recommendations inbound.RecommendationService,
	suggestions inbound.SuggestionService,
	voice inbound.VoiceService,
	health *healthcheck.HealthCheck,
) *Server {
	s := &Server{
		config:          cfg,
		logger:          logger,
		recommendations: recommendations,
		suggestions:     suggestions,
		voice:           voice,
		health:          health,
	}

	s.router = s.setupRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))

	if s.config.RateLimit.Enable {
		r.Use(middleware.NewRateLimiter(s.config.RateLimit).Handler())
	}

	// Health check
	r.Get("/health", s.health.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIRoutes(r)
	})

	return r
}

// setupAPIRoutes configures REST API routes
func (s *Server) setupAPIRoutes(r chi.Router) {
	h := handlers.NewAPIHandlers(s.recommendations, s.suggestions, s.voice, s.logger)

	r.Route("/recommendations", func(r chi.Router) {
		r.Get("/daily", h.GetDailyRecommendation)
		r.Put("/{id}/response", h.RespondToRecommendation)
	})

	r.Route("/suggestions", func(r chi.Router) {
		r.Get("/", h.GetSuggestions)
		r.Post("/regenerate", h.RegenerateSuggestions)
	})

	r.Post("/voice-suggestions", h.VoiceSuggestions)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
