/*
Package server exposes a natural-sort tree over HTTP.

	GET  /api/tree          JSON snapshot
	GET  /api/tree/keys     keys in order
	GET  /api/tree/dump     indented text dump
	GET  /api/tree/diagram  box diagram, ?dir=ltr|rtl|auto
	POST /api/keys          {"key": "..."}
	GET  /api/keys/{key}    {"key": "...", "present": bool}
	GET  /ws                snapshot on connect, then one per insertion
*/
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"natbtree/btree"
	"natbtree/diagram"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	tree *btree.Btree[string]
	log  zerolog.Logger
	dir  diagram.Direction
	hub  *hub

	// serializes insert+broadcast so subscribers see snapshots in insertion order
	mu sync.Mutex
}

func New(tree *btree.Btree[string], dir diagram.Direction, log zerolog.Logger) *Server {
	return &Server{
		tree: tree,
		log:  log,
		dir:  dir,
		hub:  newHub(log),
	}
}

// Handler returns the chi router serving every endpoint.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tree", s.handleTree)
		r.Get("/tree/keys", s.handleKeys)
		r.Get("/tree/dump", s.handleDump)
		r.Get("/tree/diagram", s.handleDiagram)
		r.Post("/keys", s.handleInsert)
		r.Get("/keys/{key}", s.handleLookup)
	})
	r.Get("/ws", s.handleWS)
	return r
}

// Insert stores key and pushes the new snapshot to every subscriber.
func (s *Server) Insert(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := s.tree.Insert(key)
	if inserted {
		s.hub.broadcast(s.tree.Snapshot())
	}
	return inserted
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.hub.closeAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
