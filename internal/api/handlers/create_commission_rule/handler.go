package create_commission_rule

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
	msgCreateFailed       = "failed to create commission rule"
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

// Handle POST /api/v1/entities/{entityId}/commission-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entityID := mux.Vars(r)["entityId"]

	var req models.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /entities/%s/commission-rules - invalid request body: %v", entityID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// The path is authoritative for tenancy.
	req.EntityID = entityID

	rule, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, commissionrules.ErrInvalidInput) {
			h.logger.Warn("POST /entities/%s/commission-rules - invalid input: %v", entityID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /entities/%s/commission-rules - create failed: %v", entityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /entities/%s/commission-rules - rule id=%s created", entityID, rule.ID)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}
