package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/service/bookingstore"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgCancelFailed       = "failed to cancel booking"
)

// CancelRequest optional cancellation reason
type CancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	// The body is optional: cancelling without a reason is allowed.
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/%s/cancel - invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.store.Cancel(r.Context(), bookingID, req.Reason)
	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			h.logger.Warn("PATCH /bookings/%s/cancel - booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("PATCH /bookings/%s/cancel - cancel failed: %v", bookingID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgCancelFailed)
		return
	}

	h.logger.Info("PATCH /bookings/%s/cancel - booking cancelled", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
