// Package server is the local map server: static renders of the atlas over
// HTTP and live interactive sessions over websockets.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ChicagoDave/solaris/pkg/atlas"
	"github.com/ChicagoDave/solaris/pkg/validation"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 30 * time.Second

	// DefaultFrameInterval paces animation frames pushed to sessions.
	DefaultFrameInterval = time.Second / 60
)

// Server serves one atlas.
type Server struct {
	atlas  *atlas.Atlas
	report *validation.Report
	log    *zap.SugaredLogger

	router   *mux.Router
	http     *http.Server
	sessions *hub

	frameInterval time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithFrameInterval overrides the session frame rate.
func WithFrameInterval(d time.Duration) Option {
	return func(s *Server) { s.frameInterval = d }
}

// New creates a server for a built atlas. The report is the one returned by
// atlas.Build and is served at /api/validation.
func New(a *atlas.Atlas, report *validation.Report, port int, log *zap.SugaredLogger, opts ...Option) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if report == nil {
		report = validation.NewReport()
	}
	s := &Server{
		atlas:         a,
		report:        report,
		log:           log,
		router:        mux.NewRouter(),
		sessions:      newHub(),
		frameInterval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.handleWebSocket)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/map.svg", s.handleSVG).Methods(http.MethodGet)
	api.HandleFunc("/map.png", s.handlePNG).Methods(http.MethodGet)
	api.HandleFunc("/regions", s.handleRegions).Methods(http.MethodGet)
	api.HandleFunc("/regions.geojson", s.handleGeoJSON).Methods(http.MethodGet)
	api.HandleFunc("/regions/{id}", s.handleRegion).Methods(http.MethodGet)
	api.HandleFunc("/validation", s.handleValidation).Methods(http.MethodGet)
}

// Handler returns the router, for embedding or tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.log.Infow("map server starting", "addr", "http://localhost"+s.http.Addr, "map", s.atlas.Catalog().Name)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting requests and ends every live session.
func (s *Server) Shutdown(ctx context.Context) error {
	s.sessions.closeAll()
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	s.log.Infow("map server stopped")
	return nil
}
