package update_commission_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/service/commissionrules"
	"github.com/schedfy/dashboard-service/internal/service/commissionrules/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgRuleNotFound       = "commission rule not found"
	msgUpdateFailed       = "failed to update commission rule"
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

// Handle PATCH /api/v1/entities/{entityId}/commission-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ruleID := mux.Vars(r)["ruleId"]

	var req models.UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /commission-rules/%s - invalid request body: %v", ruleID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.Update(r.Context(), ruleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, commissionrules.ErrRuleNotFound):
			h.logger.Warn("PATCH /commission-rules/%s - rule not found", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)
		case errors.Is(err, commissionrules.ErrInvalidInput):
			h.logger.Warn("PATCH /commission-rules/%s - invalid input: %v", ruleID, err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PATCH /commission-rules/%s - update failed: %v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /commission-rules/%s - rule updated", ruleID)
	handlers.RespondJSON(w, http.StatusOK, rule)
}
