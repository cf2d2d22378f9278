package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crmkit/salespipe/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps domain error kinds to statuses. Anything unrecognized
// is a 500 with a generic body so store internals never leak.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch usecase.KindOf(err) {
	case usecase.KindInvalidInput:
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case usecase.KindNotFound:
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case usecase.KindConflict:
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
