package get_attribution_report

import (
	"context"
	"time"

	"github.com/schedfy/dashboard-service/internal/domain"
)

// BookingProvider loads the entity's bookings for the report period
type BookingProvider interface {
	LoadByDateRange(ctx context.Context, entityID string, startDate, endDate time.Time) ([]domain.Booking, error)
}

// RuleProvider loads the entity's commission rules in creation order
type RuleProvider interface {
	ListByEntity(ctx context.Context, entityID string, includeInactive bool) ([]*domain.CommissionRule, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
