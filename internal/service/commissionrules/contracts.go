package commissionrules

import (
	"context"

	"github.com/schedfy/dashboard-service/internal/domain"
)

// RuleRepository repository interface for commission rules
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.CommissionRule) (*domain.CommissionRule, error)
	GetByID(ctx context.Context, id string) (*domain.CommissionRule, error)
	ListByEntity(ctx context.Context, entityID string, includeInactive bool) ([]*domain.CommissionRule, error)
	Update(ctx context.Context, rule *domain.CommissionRule) (*domain.CommissionRule, error)
	Delete(ctx context.Context, id string) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
