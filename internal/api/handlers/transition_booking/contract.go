package transition_booking

import (
	"context"

	"github.com/schedfy/dashboard-service/internal/domain"
)

type BookingStore interface {
	Confirm(ctx context.Context, id string) (*domain.Booking, error)
	Complete(ctx context.Context, id string) (*domain.Booking, error)
	MarkNoShow(ctx context.Context, id string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
