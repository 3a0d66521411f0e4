package bookingstore

import (
	"context"
	"time"

	"github.com/schedfy/dashboard-service/internal/domain"
	"github.com/schedfy/dashboard-service/internal/integrations/bookingapi"
)

// BookingAPIClient interface over the remote booking API client
type BookingAPIClient interface {
	ListByEntity(ctx context.Context, entityID string) ([]domain.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Booking, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]domain.Booking, error)
	ListByService(ctx context.Context, serviceID string) ([]domain.Booking, error)
	ListByDateRange(ctx context.Context, entityID string, startDate, endDate time.Time) ([]domain.Booking, error)
	Create(ctx context.Context, req *bookingapi.CreateBookingRequest) (*domain.Booking, error)
	Update(ctx context.Context, id string, req *bookingapi.UpdateBookingRequest) (*domain.Booking, error)
	Confirm(ctx context.Context, id string) (*domain.Booking, error)
	Complete(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string, reason *string) (*domain.Booking, error)
	MarkNoShow(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, req *bookingapi.AvailabilityRequest) (*domain.AvailabilityResult, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
