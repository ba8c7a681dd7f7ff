// Package api provides the HTTP API server for the article pipeline.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wikiseek/wikiseek"
	apimiddleware "github.com/wikiseek/wikiseek/infrastructure/api/middleware"
	v1 "github.com/wikiseek/wikiseek/infrastructure/api/v1"
	"github.com/wikiseek/wikiseek/internal/log"
)

// Server is the HTTP API server wired to a wikiseek Client.
type Server struct {
	client     *wikiseek.Client
	router     chi.Router
	httpServer *http.Server
	logger     *log.Logger
	addr       string
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, client *wikiseek.Client) *Server {
	logger := client.Logger()

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(apimiddleware.CorrelationID)
	router.Use(apimiddleware.Logging(logger))

	s := &Server{
		client: client,
		router: router,
		logger: logger,
		addr:   addr,
	}
	s.mountRoutes()

	return s
}

// Router returns the chi router, exposed for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) mountRoutes() {
	searchRouter := v1.NewSearchRouter(s.client)
	languagesRouter := v1.NewLanguagesRouter(s.client)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))
		r.Mount("/search", searchRouter.Routes())
		r.Mount("/languages", languagesRouter.Routes())
	})

	s.router.Get("/health", s.health)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	apimiddleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("starting HTTP server", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}
