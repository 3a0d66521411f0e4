package list_bookings_range

import (
	"context"
	"time"

	"github.com/schedfy/dashboard-service/internal/domain"
)

type BookingStore interface {
	LoadByDateRange(ctx context.Context, entityID string, startDate, endDate time.Time) ([]domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
