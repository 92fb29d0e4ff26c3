// Package server exposes the schedule extraction pipeline over HTTP and
// MCP: document upload, parsing, and extraction history.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/schoolware/timetab/docpipe"
	"github.com/schoolware/timetab/shield"
	"github.com/schoolware/timetab/store"
)

// Server wires the document pipeline, the parsing engine, and the
// extraction store behind a chi router.
type Server struct {
	cfg    *Config
	store  *store.Store
	pipe   *docpipe.Pipeline
	logger *slog.Logger
	rl     *shield.RateLimiter
}

// New creates a Server. The store's database also backs the rate limiter.
func New(cfg *Config, st *store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:   cfg,
		store: st,
		pipe: docpipe.New(docpipe.Config{
			MaxFileSize: cfg.MaxUploadBytes(),
			Logger:      logger,
		}),
		logger: logger,
	}
}

// RateLimiter returns the rate limiter created by Routes, for starting
// its background reloader. Nil before Routes is called.
func (s *Server) RateLimiter() *shield.RateLimiter { return s.rl }

// Routes builds the HTTP handler with the full middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	stack, rl := shield.DefaultStack(s.store.DB())
	s.rl = rl
	for _, mw := range stack {
		r.Use(mw)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "timetab",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Post("/extract", s.handleExtract)
	r.Get("/api/formats", s.handleFormats)
	r.Get("/api/extractions", s.handleListExtractions)
	r.Get("/api/extractions/{id}", s.handleGetExtraction)

	return r
}

func (s *Server) handleFormats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"formats": docpipe.SupportedFormats()})
}
