package list_commission_rules

import (
	"context"

	"github.com/schedfy/dashboard-service/internal/service/commissionrules/models"
)

type CommissionRulesService interface {
	ListByEntity(ctx context.Context, entityID string, includeInactive bool) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
