// SPDX-License-Identifier: MIT

// Package server exposes a Snapshot over HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /v1/graph
//	GET /v1/vertices/{id}
//	GET /v1/sssp/{source}?frontier=&max_distance=&inf_edge_threshold=
//	GET /v1/path/{source}/{target}?frontier=&max_distance=&inf_edge_threshold=
//
// Identifiers in paths are parsed with edgelist.ParseAuto, so both integers
// and dotted-quad IPv4 addresses are accepted. Identical concurrent SSSP
// requests share one computation.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/csrpath/pipeline"
)

// Server serves queries for one Runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	flight singleflight.Group
	router chi.Router

	// queryTimeout bounds each query; zero means only the request context.
	queryTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithQueryTimeout bounds the time spent in a single query.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.queryTimeout = d
	}
}

// New builds the router for r.
func New(r *pipeline.Runner, opts ...Option) *Server {
	s := &Server{runner: r, logger: r.Logger}
	for _, opt := range opts {
		opt(s)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.requestID)
	router.Use(s.accessLog)

	router.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, http.StatusNotFound, "not_found", "no such route")
	})

	router.Get("/healthz", s.handleHealth)
	router.Route("/v1", func(v1 chi.Router) {
		v1.Get("/graph", s.handleGraph)
		v1.Get("/vertices/{id}", s.handleVertex)
		v1.Get("/sssp/{source}", s.handleSSSP)
		v1.Get("/path/{source}/{target}", s.handlePath)
	})
	s.router = router

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is ListenAndServe over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String(), "fingerprint", s.runner.Snapshot.Fingerprint)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
