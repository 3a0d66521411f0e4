package list_bookings

import (
	"context"

	"github.com/schedfy/dashboard-service/internal/domain"
)

type BookingStore interface {
	Load(ctx context.Context, scope domain.BookingScope) ([]domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
