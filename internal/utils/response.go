// Package utils provides utility functions and helpers for the application.
// This file implements the JSON response writers used by every handler.
//
// Unlike richer APIs, this service does not wrap payloads in an envelope:
// the browser extension and dashboard consume the documented shapes directly
// (for example a bare moderation result, or {"keywords": [...]}), so the
// writers serialize exactly what they are given. Errors are serialized as
// {"error": message}.
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// JSON sends a JSON response with the given status code and payload.
// This is the primary function for sending successful responses.
//
// Parameters:
//   - w: The HTTP response writer
//   - statusCode: The HTTP status code
//   - payload: The value to serialize as the response body
func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(`{"error":"failed to encode response"}`)); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// Error sends an error response with the given status code and message.
//
// Parameters:
//   - w: The HTTP response writer
//   - statusCode: The HTTP status code
//   - message: A human-readable error message
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, errorBody{Error: message})
}

// ErrorFromAppError sends an error response based on an AppError.
// This provides a convenient way to convert application errors to API
// responses.
func ErrorFromAppError(w http.ResponseWriter, err *AppError) {
	Error(w, err.StatusCode, err.Message)
}

// NotFound sends a 404 response. Used for missing assets and for rejected
// path traversal attempts, which deliberately look identical to a miss.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "not found"
	}
	Error(w, http.StatusNotFound, message)
}
