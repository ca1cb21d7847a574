// Package server provides the HTTP gateway that stores saved resumes and enhances sections.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-editor/internal/llm"
	"github.com/jonathan/resume-editor/internal/server/ratelimit"
	"github.com/jonathan/resume-editor/internal/store"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

// Server represents the HTTP server
type Server struct {
	router   chi.Router
	store    store.Store
	enhancer llm.Enhancer
	limiter  *ratelimit.Limiter
	validate *validator.Validate
	log      *slog.Logger
}

// Config holds server configuration
type Config struct {
	Port      int
	RateLimit bool
}

// New creates a server backed by st and enh.
func New(st store.Store, enh llm.Enhancer, log *slog.Logger, cfg Config) *Server {
	if log == nil {
		log = slog.Default()
	}
	if enh == nil {
		enh = llm.EchoEnhancer{}
	}
	s := &Server{
		store:    st,
		enhancer: enh,
		validate: validator.New(),
		log:      log,
	}
	if cfg.RateLimit {
		s.limiter = ratelimit.New(ratelimit.DefaultRules())
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(withCORS)
	if s.limiter != nil {
		r.Use(s.limiter.Middleware)
	}

	r.Get("/health", s.handleHealth)
	r.Post("/save-resume", s.handleSaveResume)
	r.Get("/saved-resume", s.handleSavedResume)
	r.Post("/ai-enhance", s.handleEnhance)

	s.router = r
}

// ListenAndServe serves on port until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
