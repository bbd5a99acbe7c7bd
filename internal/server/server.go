// Package server exposes the netlist toolchain over HTTP: parsing
// netlist text into circuit snapshots, emitting snapshots back to
// text, and hierarchy instance counting. Requests are tagged with a
// generated id and logged with method, path, status, and duration.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

// Server is the HTTP front end. Every request handles one independent
// circuit; nothing is shared between requests, so the server is safe
// for concurrent use.
type Server struct {
	logger *log.Logger
	router chi.Router
}

// New builds a server with all routes mounted. A nil logger falls back
// to the default logger.
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Post("/emit", s.handleEmit)
		r.Post("/count", s.handleCount)
		r.Post("/graph", s.handleGraph)
	})

	s.router = r
	return s
}

// Handler returns the mounted route tree.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until the context is canceled, then
// shuts down gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
