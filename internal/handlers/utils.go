// internal/handlers/utils.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skourtis/kryfo/internal/engine"
)

// decodeJSON parses the request body into dst, rejecting non-POST methods.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON writes v as the JSON response body.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeEngineError maps the engine's typed failures onto HTTP status codes.
// Not-found aborts map to 404, authorization to 403, wrong-phase attempts to
// 409, and caller-fixable validation failures to 400.
func writeEngineError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, engine.ErrLobbyNotFound),
		errors.Is(err, engine.ErrPlayerNotFound),
		errors.Is(err, engine.ErrTargetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrNotHost):
		status = http.StatusForbidden
	case errors.Is(err, engine.ErrLobbyNotWaiting),
		errors.Is(err, engine.ErrInvalidStatus):
		status = http.StatusConflict
	case errors.Is(err, engine.ErrLobbyNotFull),
		errors.Is(err, engine.ErrWordPairsExhausted),
		errors.Is(err, engine.ErrNotPendingBlind),
		errors.Is(err, engine.ErrEmptyGuess):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
