package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/integrations/bookingapi"
	"github.com/schedfy/dashboard-service/internal/service/bookingstore"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgUpdateFailed       = "failed to update booking"
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

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req bookingapi.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%s - invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.store.Update(r.Context(), bookingID, &req)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			h.logger.Warn("PATCH /bookings/%s - booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("PATCH /bookings/%s - update failed: %v", bookingID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUpdateFailed)
		return
	}

	h.logger.Info("PATCH /bookings/%s - booking updated", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
