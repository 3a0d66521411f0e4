package update_booking

import (
	"context"

	"github.com/schedfy/dashboard-service/internal/domain"
	"github.com/schedfy/dashboard-service/internal/integrations/bookingapi"
)

type BookingStore interface {
	Update(ctx context.Context, id string, req *bookingapi.UpdateBookingRequest) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
