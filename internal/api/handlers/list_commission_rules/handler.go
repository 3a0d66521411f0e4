package list_commission_rules

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/service/commissionrules"
)

const (
	msgInvalidInput = "entityId is required"
	msgListFailed   = "failed to list commission rules"
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

// Handle GET /api/v1/entities/{entityId}/commission-rules?includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entityID := mux.Vars(r)["entityId"]
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	rules, err := h.service.ListByEntity(r.Context(), entityID, includeInactive)
	if err != nil {
		if errors.Is(err, commissionrules.ErrInvalidInput) {
			h.logger.Warn("GET /entities/%s/commission-rules - invalid input: %v", entityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /entities/%s/commission-rules - list failed: %v", entityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /entities/%s/commission-rules - %d rules", entityID, len(rules.Rules))
	handlers.RespondJSON(w, http.StatusOK, rules)
}
