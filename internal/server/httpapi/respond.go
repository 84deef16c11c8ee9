package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/ordertrack/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service sentinels to HTTP statuses. Anything
// unrecognized is logged and reported as a bare internal error.
func (s *Server) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		s.writeError(w, http.StatusConflict, "user already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		s.writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrorNotFound):
		s.writeError(w, http.StatusNotFound, "not found")
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
