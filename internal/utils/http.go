package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cardfolio/cardfolio/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP
// response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteEnvelope writes the standard API response envelope with the given
// outcome, message, and optional payload.
func WriteEnvelope(w http.ResponseWriter, statusCode int, message string, data any) (int, error) {
	return WriteJSON(w, models.Envelope{
		Success: statusCode < http.StatusBadRequest,
		Message: message,
		Data:    data,
	}, statusCode)
}

// WriteErrorEnvelope writes a failure envelope with an optional list of
// individual problem descriptions (e.g. per-field validation errors).
// The message is sanitized before it is written; see Sanitize.
func WriteErrorEnvelope(w http.ResponseWriter, statusCode int, message string, problems []string) (int, error) {
	sanitized := make([]string, len(problems))
	for i, p := range problems {
		sanitized[i] = Sanitize(p)
	}

	return WriteJSON(w, models.Envelope{
		Success: false,
		Message: Sanitize(message),
		Errors:  sanitized,
	}, statusCode)
}
