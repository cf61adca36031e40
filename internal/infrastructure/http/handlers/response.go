package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage sends JSON { "message": ... }.
func writeMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"message": message})
}

// writeValidationErrors sends 400 with the collected messages.
func writeValidationErrors(w http.ResponseWriter, msgs []string) {
	writeJSON(w, http.StatusBadRequest, map[string][]string{"errors": msgs})
}

// errorReporter maps unexpected failures to the 500 payload. Logging is
// gated by an explicit flag set at startup rather than ambient state.
type errorReporter struct {
	log       zerolog.Logger
	logErrors bool
}

func (e errorReporter) serverError(w http.ResponseWriter, err error) {
	if e.logErrors {
		e.log.Error().Err(err).Msg("handler error")
	}
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"message": err.Error(),
		"error":   struct{}{},
	})
}
