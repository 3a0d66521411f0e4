package delete_commission_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/service/commissionrules"
)

const (
	msgRuleNotFound = "commission rule not found"
)

type Handler struct {
	service CommissionRulesService
	logger  Logger
}

func NewHandler(service CommissionRulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/entities/{entityId}/commission-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ruleID := mux.Vars(r)["ruleId"]

	if err := h.service.Delete(r.Context(), ruleID); err != nil {
		if errors.Is(err, commissionrules.ErrRuleNotFound) {
			h.logger.Warn("DELETE /commission-rules/%s - rule not found", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)
			return
		}

		h.logger.Error("DELETE /commission-rules/%s - delete failed: %v", ruleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /commission-rules/%s - rule deleted", ruleID)
	handlers.RespondNoContent(w)
}
