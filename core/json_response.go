// Package core provides the JSON response envelope and HTTP error taxonomy
// shared by every endpoint.
package core

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/garderie-etoiles/website/pkg/validator"
)

// JSONResponse is the standard JSON response structure.
type JSONResponse struct {
	Message string       `json:"message,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// WriteJSON renders body as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Message renders a 200 confirmation payload.
func Message(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, JSONResponse{Message: message})
}

// Error renders an error payload with a human-readable reason.
func Error(w http.ResponseWriter, status int, code, message string, details map[string][]string) {
	WriteJSON(w, status, JSONResponse{
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// JSONError renders err using the taxonomy: field-validation errors map to a
// 400 with per-field details, HTTPError to its own status, and anything else
// to a generic 500 that leaks no internal detail.
func JSONError(w http.ResponseWriter, err error) {
	if ve := validator.ExtractValidationErrors(err); ve != nil {
		details := make(map[string][]string, len(ve.Fields()))
		for _, field := range ve.Fields() {
			details[field] = ve.Get(field)
		}
		Error(w, http.StatusBadRequest, "validation_error", "validation failed", details)
		return
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		Error(w, httpErr.Code, httpErr.Key, http.StatusText(httpErr.Code), nil)
		return
	}

	Error(w, http.StatusInternalServerError, ErrInternalServerError.Key, http.StatusText(http.StatusInternalServerError), nil)
}
