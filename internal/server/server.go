package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/wook89/movie-search/internal/catalog"
	"github.com/wook89/movie-search/internal/config"
	"github.com/wook89/movie-search/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server serves the catalog HTTP API.
type Server struct {
	bind        string
	corsOrigins []string
	catalog     *catalog.Catalog
	logger      *slog.Logger
	handler     http.Handler
}

// New builds a Server bound to cfg.Server.Bind.
func New(cfg *config.Config, cat *catalog.Catalog, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}
	if cat == nil {
		return nil, errors.New("server: catalog is required")
	}
	s := &Server{
		bind:        strings.TrimSpace(cfg.Server.Bind),
		corsOrigins: cfg.Server.CORSOrigins,
		catalog:     cat,
		logger:      logging.NewComponentLogger(logger, "server"),
	}
	s.handler = s.requestID(s.accessLog(s.cors(s.routes())))
	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(listener)
	}()
	s.logger.Info("api server listening",
		logging.String("address", listener.Addr().String()),
		logging.Bool("tmdb_configured", s.catalog.Configured()),
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api shutdown: %w", err)
	}
	s.logger.Info("api server stopped")
	return nil
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	router.HandleFunc("/autocomplete", s.handleAutocomplete).Methods(http.MethodGet)
	router.HandleFunc("/rankings", s.handleRankings).Methods(http.MethodGet)
	router.HandleFunc("/details/{media_type}/{item_id}", s.handleDetails).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return router
}
