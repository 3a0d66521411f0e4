package bookingstore

import (
	"errors"
	"fmt"

	"github.com/schedfy/dashboard-service/internal/domain"
)

var (
	// ErrMissingEntityID is returned when a date-range load is attempted
	// without an entity id
	ErrMissingEntityID = errors.New("bookingstore: entityId is required")

	// ErrConflict is returned when the server rejects a create with a
	// scheduling conflict; carried by *ConflictError
	ErrConflict = errors.New("bookingstore: booking conflict")

	// ErrBookingNotFound is returned when the target booking does not exist
	ErrBookingNotFound = errors.New("bookingstore: booking not found")

	// ErrOperationFailed wraps any other remote failure; the collection
	// is left untouched
	ErrOperationFailed = errors.New("bookingstore: operation failed")
)

// ConflictError is the store's user-actionable conflict error: the UI
// renders slot-taken messaging from Conflicts instead of a generic
// failure toast. Distinguish with errors.Is(err, ErrConflict) and
// extract via errors.As.
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

// Unwrap makes errors.Is(err, ErrConflict) hold
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
