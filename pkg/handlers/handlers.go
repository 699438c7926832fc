// Package handlers provides JSON response helpers shared by HTTP handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// RespondJSON writes data as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes a JSON error body with the given status code.
// When err implements Fields() map[string]string, the field map is included so
// callers can re-render forms with field-level messages.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("request failed", "status", status, "error", err)

	body := map[string]any{"error": err.Error()}

	var fielded interface{ Fields() map[string]string }
	if errors.As(err, &fielded) {
		body["fields"] = fielded.Fields()
	}

	RespondJSON(w, status, body)
}
