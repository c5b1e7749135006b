// Package server exposes the validation engine over HTTP: the campaign
// validation endpoint, the standalone analyzer endpoints, and health.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/outboundhq/campaign-validator/internal/validation"
)

// Server is the HTTP frontend for the validation service
type Server struct {
	service    *validation.Service
	logger     *zap.Logger
	httpServer *http.Server
	provider   string
}

// NewServer creates the HTTP server with routing and middleware configured
func NewServer(
	service *validation.Service,
	logger *zap.Logger,
	listenAddr string,
	corsOrigins []string,
	provider string,
) *Server {
	s := &Server{
		service:  service,
		logger:   logger,
		provider: provider,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/campaigns/validate", s.handleValidateCampaign)
		r.Route("/analyze", func(r chi.Router) {
			r.Post("/subject", s.handleAnalyzeSubject)
			r.Post("/copy", s.handleAnalyzeCopy)
		})
	})

	s.httpServer = &http.Server{
		Addr:         listenAddr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	return s
}

// Handler exposes the configured router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving HTTP requests. It returns once the listener stops.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
