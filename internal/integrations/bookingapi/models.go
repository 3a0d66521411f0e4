package bookingapi

import (
	"time"

	"github.com/schedfy/dashboard-service/internal/domain"
)

// CreateBookingRequest payload for POST /api/bookings
type CreateBookingRequest struct {
	EntityID       string  `json:"entityId"`
	ClientID       *string `json:"clientId,omitempty"`
	ProfessionalID *string `json:"professionalId,omitempty"`
	ServiceID      *string `json:"serviceId,omitempty"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	// Status may be set to "blocked" to create a synthetic
	// unavailability booking; left empty the server defaults to pending.
	Status domain.BookingStatus `json:"status,omitempty"`

	BasePrice      *float64 `json:"basePrice,omitempty"`
	DiscountAmount *float64 `json:"discountAmount,omitempty"`
	DiscountReason *string  `json:"discountReason,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// UpdateBookingRequest partial payload for PATCH /api/bookings/{id}.
// Nil fields are omitted and left untouched by the server.
type UpdateBookingRequest struct {
	ProfessionalID *string    `json:"professionalId,omitempty"`
	ServiceID      *string    `json:"serviceId,omitempty"`
	StartTime      *time.Time `json:"startTime,omitempty"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	BasePrice      *float64   `json:"basePrice,omitempty"`
	DiscountAmount *float64   `json:"discountAmount,omitempty"`
	DiscountReason *string    `json:"discountReason,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// CancelBookingRequest payload for PATCH /api/bookings/{id}/cancel
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// AvailabilityRequest payload for POST /api/bookings/check-availability
type AvailabilityRequest struct {
	ServiceID      string    `json:"serviceId"`
	ProfessionalID *string   `json:"professionalId,omitempty"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
}

// errorEnvelope error body returned by the booking API.
// A 409 response carries the conflicting bookings under errors.conflicts.
type errorEnvelope struct {
	Message string `json:"message"`
	Errors  struct {
		Conflicts []domain.Booking `json:"conflicts"`
	} `json:"errors"`
}
