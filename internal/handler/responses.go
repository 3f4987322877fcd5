package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pitchside/pitchside/internal/logger"
)

// MessageResponse is the success envelope for write operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response. Encoding happens into a pooled buffer
// first so an encode failure never leaves a half-written body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response",
			slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.FromContext(r.Context()).Error("failed to write response",
			slog.Any("error", err))
	}
}

func respondMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, MessageResponse{Message: message})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, ErrorResponse{Error: message})
}
