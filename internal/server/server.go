// Package server exposes a board session over HTTP: a JSON inspection
// API, remote mutation endpoints, Graphviz exports, and a websocket
// stream of transition events.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/taskboard/pkg/feed"
	"github.com/matzehuels/taskboard/pkg/sim"
)

// Server serves one board session.
type Server struct {
	session *sim.Session
	bus     *feed.Bus
	logger  *log.Logger
}

// New creates a server around a session. The bus feeds the websocket
// stream and may be nil to disable it; a nil logger discards server logs.
func New(session *sim.Session, bus *feed.Bus, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{session: session, bus: bus, logger: logger}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/graph.dot", s.handleGraphDOT)
		r.Get("/graph.svg", s.handleGraphSVG)

		r.Post("/tasks", s.handleCreateTask)
		r.Get("/tasks/{id}", s.handleGetTask)
		r.Post("/tasks/{id}/{action}", s.handleTaskAction)

		r.Post("/links", s.handleCreateLink)
		r.Delete("/links", s.handleDeleteLink)
	})

	r.Get("/ws", s.handleWS)
	return r
}

// ListenAndServe runs the server until ctx is cancelled or the
// listener fails. Cancellation triggers a graceful shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.logger.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
