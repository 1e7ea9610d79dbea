package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wook89/movie-search/internal/logging"
	"github.com/wook89/movie-search/internal/services"
)

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("api response encode failed", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorBody{Error: message})
}

// writeServiceError maps a classified error onto its status code and logs
// it once: warn for client errors, error for everything else. Requests the
// caller abandoned are dropped with a debug line and no body.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := services.HTTPStatus(err)
	logger := logging.WithContext(r.Context(), s.logger)
	if errors.Is(err, services.ErrCanceled) {
		logger.Debug("request abandoned by client", logging.String("path", r.URL.Path))
		w.WriteHeader(status)
		return
	}
	attrs := logging.Args(
		logging.Int("status", status),
		logging.String("path", r.URL.Path),
		logging.Error(err),
	)
	level := slog.LevelError
	if status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	logger.Log(r.Context(), level, "request failed", attrs...)
	s.writeError(w, status, services.PublicMessage(err))
}
