package create_commission_rule

import (
	"context"

	"github.com/schedfy/dashboard-service/internal/service/commissionrules/models"
)

type CommissionRulesService interface {
	Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
