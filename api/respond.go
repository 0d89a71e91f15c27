package api

import (
	"encoding/json"
	"net/http"

	"github.com/sandlot-league/scorebook/app/shared/attr"
)

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to encode response", attr.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.respondJSON(w, r, status, errorResponse{Error: msg})
}
