package update_commission_rule

import (
	"context"

	"github.com/schedfy/dashboard-service/internal/service/commissionrules/models"
)

type CommissionRulesService interface {
	Update(ctx context.Context, id string, req *models.UpdateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
