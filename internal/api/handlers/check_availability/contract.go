package check_availability

import (
	"context"

	"github.com/schedfy/dashboard-service/internal/domain"
	"github.com/schedfy/dashboard-service/internal/integrations/bookingapi"
)

type BookingStore interface {
	CheckAvailability(ctx context.Context, req *bookingapi.AvailabilityRequest) (*domain.AvailabilityResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
