// Package server exposes the exploration engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/KaramelBytes/dataexplorer-cli/internal/analysis"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// MaxBodyBytes caps the size of an uploaded dataset.
const MaxBodyBytes = 10 << 20

// Server holds the engine configuration shared by all handlers.
type Server struct {
	an      *analysis.Analyzer
	origins []string
	quiet   bool
}

// Option customizes a Server.
type Option func(*Server)

// WithOrigins sets the allowed CORS origins.
func WithOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// WithoutRequestLog disables the per-request access log.
func WithoutRequestLog() Option {
	return func(s *Server) { s.quiet = true }
}

// New builds a server around the given analyzer.
func New(an *analysis.Analyzer, opts ...Option) *Server {
	if an == nil {
		an = analysis.New(analysis.DefaultOptions())
	}
	s := &Server{an: an, origins: []string{"http://localhost:3000", "http://127.0.0.1:3000"}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Router returns the HTTP handler with middleware and all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	if !s.quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the API on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/datasets", s.listDatasets)
		r.Post("/analyze", s.analyzeUpload)

		r.Route("/datasets/{name}", func(r chi.Router) {
			r.Get("/", s.profile)
			r.Get("/distribution/{column}", s.distribution)
			r.Get("/categories/{column}", s.categories)
			r.Get("/correlation", s.correlation)
			r.Get("/correlation-matrix", s.correlationMatrix)
			r.Get("/outliers/{column}", s.outliers)
			r.Get("/insights", s.insights)
			r.Get("/report", s.report)
		})
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Printf("dataexplorer API listening on %s", addr)
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
