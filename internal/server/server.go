// Package server exposes the castcolor pipeline over HTTP.
//
// Instances travel as text/plain request bodies in the usual text formats;
// responses are JSON except for reductions, which return the target instance
// text. Every request carries an X-Request-ID, generated when the client
// does not send one, that is echoed back and attached to log lines.
//
// Routes:
//
//	GET  /healthz
//	POST /v1/solve?leads_apart=true|false
//	POST /v1/reduce/to-coloring
//	POST /v1/reduce/to-casting
//	GET  /v1/demos
//	GET  /v1/demos/{name}
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/castcolor/pkg/pipeline"
)

// maxBodyBytes bounds instance uploads.
const maxBodyBytes = 1 << 20

// Options configures a Server.
type Options struct {
	// MaxNodes caps every search. Zero means unlimited.
	MaxNodes int

	// LeadsApart is the filter default when the query does not set it.
	LeadsApart bool
}

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	opts   Options
}

// New creates a server around runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger, opts: opts}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/reduce/{direction}", s.handleReduce)
		r.Get("/demos", s.handleDemos)
		r.Get("/demos/{name}", s.handleDemo)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return ctx.Err()
}
