package bookingapi

import (
	"errors"
	"fmt"

	"github.com/schedfy/dashboard-service/internal/domain"
)

var (
	// ErrBookingNotFound is returned when the booking does not exist on the server
	ErrBookingNotFound = errors.New("bookingapi client: booking not found")

	// ErrConflict is returned when the server rejects a booking with HTTP 409
	ErrConflict = errors.New("bookingapi client: booking conflict")

	// ErrRequestFailed is returned for any other non-success response
	ErrRequestFailed = errors.New("bookingapi client: request failed")

	// ErrInternal is returned on client-side failures (building or executing the request)
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse is returned when the response body cannot be decoded
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)

// ConflictError carries the conflicting bookings reported by a 409
// response so callers can render slot-taken messaging.
type ConflictError struct {
	Message   string
	Conflicts []domain.Booking
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v: %s", ErrConflict, e.Message)
	}
	return ErrConflict.Error()
}

// Unwrap makes errors.Is(err, ErrConflict) hold for conflict errors
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
