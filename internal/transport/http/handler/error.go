package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gourishchouhan/strive/internal/domain/repository"
	"github.com/gourishchouhan/strive/pkg/validation"
)

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service/repository error onto the HTTP taxonomy.
// Every error path is terminal for the request; nothing is retried.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error

	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, repository.ErrConflict):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "record was modified concurrently, re-read and retry"})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Error()})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
