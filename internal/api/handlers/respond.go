package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/schedfy/dashboard-service/internal/domain"
)

// ErrorResponse error payload shape shared by all handlers.
// Mirrors the remote booking API: conflicts ride under errors.conflicts.
type ErrorResponse struct {
	Message string        `json:"message"`
	Errors  *ErrorDetails `json:"errors,omitempty"`
}

// ErrorDetails structured error payload details
type ErrorDetails struct {
	Conflicts []domain.Booking `json:"conflicts,omitempty"`
}

// DecodeJSON decodes a JSON request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

// RespondJSON writes a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError writes a JSON error response with the given status.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Message: message})
}

// RespondConflict writes a 409 carrying the conflicting bookings.
func RespondConflict(w http.ResponseWriter, message string, conflicts []domain.Booking) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{
		Message: message,
		Errors:  &ErrorDetails{Conflicts: conflicts},
	})
}

// RespondBadRequest writes a 400 error response.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound writes a 404 error response.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError writes a generic 500 error response.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}

// RespondNoContent writes an empty 204 response.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
