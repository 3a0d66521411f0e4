package check_availability

import (
	"net/http"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/integrations/bookingapi"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingService     = "serviceId is required"
	msgInvalidInterval    = "endTime must be after startTime"
	msgCheckFailed        = "failed to check availability"
)

type Handler struct {
	store  BookingStore
	logger Logger
}

func NewHandler(store BookingStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/bookings/check-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req bookingapi.AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-availability - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ServiceID == "" {
		h.logger.Warn("POST /bookings/check-availability - missing serviceId")
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}

	if !req.EndTime.After(req.StartTime) {
		h.logger.Warn("POST /bookings/check-availability - invalid interval for service=%s", req.ServiceID)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	result, err := h.store.CheckAvailability(r.Context(), &req)
	if err != nil {
		h.logger.Error("POST /bookings/check-availability - check failed for service=%s: %v", req.ServiceID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgCheckFailed)
		return
	}

	h.logger.Info("POST /bookings/check-availability - service=%s available=%t conflicts=%d",
		req.ServiceID, result.Available, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
