package get_attribution_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/domain"
	attributionReport "github.com/schedfy/dashboard-service/internal/usecase/get_attribution_report"
)

const (
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDateRange = "endDate must not be before startDate"
	msgReportFailed     = "failed to build attribution report"
)

type Handler struct {
	useCase AttributionReportUseCase
	logger  Logger
}

func NewHandler(useCase AttributionReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/entities/{entityId}/reports/attribution?startDate&endDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entityID := mux.Vars(r)["entityId"]

	startDate, err := time.Parse(domain.DateFormat, r.URL.Query().Get("startDate"))
	if err != nil {
		h.logger.Warn("GET reports/attribution - invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, r.URL.Query().Get("endDate"))
	if err != nil {
		h.logger.Warn("GET reports/attribution - invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &attributionReport.Request{
		EntityID:  entityID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, attributionReport.ErrInvalidDateRange):
			h.logger.Warn("GET reports/attribution - invalid range for entity=%s", entityID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)
		case errors.Is(err, attributionReport.ErrInvalidInput):
			h.logger.Warn("GET reports/attribution - invalid input for entity=%s: %v", entityID, err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET reports/attribution - failed for entity=%s: %v", entityID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgReportFailed)
		}
		return
	}

	h.logger.Info("GET reports/attribution - entity=%s, completed=%d", entityID, result.CompletedBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
