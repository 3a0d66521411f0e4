package create_booking

import (
	"errors"
	"net/http"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/integrations/bookingapi"
	"github.com/schedfy/dashboard-service/internal/service/bookingstore"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingEntity      = "entityId is required"
	msgInvalidInterval    = "endTime must be after startTime"
	msgSlotConflict       = "the requested time slot conflicts with existing bookings"
	msgCreateFailed       = "failed to create booking"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req bookingapi.CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.EntityID == "" {
		h.logger.Warn("POST /bookings - missing entityId")
		handlers.RespondBadRequest(w, msgMissingEntity)
		return
	}

	if !req.EndTime.After(req.StartTime) {
		h.logger.Warn("POST /bookings - invalid interval for entity=%s", req.EntityID)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	booking, err := h.store.Create(r.Context(), &req)
	if err != nil {
		var conflict *bookingstore.ConflictError
		if errors.As(err, &conflict) {
			h.logger.Warn("POST /bookings - conflict for entity=%s, %d conflicting bookings",
				req.EntityID, len(conflict.Conflicts))
			handlers.RespondConflict(w, msgSlotConflict, conflict.Conflicts)
			return
		}

		h.logger.Error("POST /bookings - create failed for entity=%s: %v", req.EntityID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgCreateFailed)
		return
	}

	h.logger.Info("POST /bookings - booking id=%s created for entity=%s", booking.ID, req.EntityID)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
