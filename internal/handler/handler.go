package handler

import (
	"encoding/json"
	"net/http"

	"shopfront/internal/middleware"
	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeError writes a standardised error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.GetRequestID(r.Context())
	logger.Warn().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeDomainError maps a domain error onto an HTTP response.
func writeDomainError(w http.ResponseWriter, r *http.Request, status int, err *model.DomainError, logger zerolog.Logger) {
	writeError(w, r, status, err.Code, err.Message, logger)
}
