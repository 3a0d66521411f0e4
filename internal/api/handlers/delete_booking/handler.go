package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/service/bookingstore"
)

const (
	msgBookingNotFound = "booking not found"
	msgDeleteFailed    = "failed to delete booking"
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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.store.Delete(r.Context(), bookingID); err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			h.logger.Warn("DELETE /bookings/%s - booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /bookings/%s - delete failed: %v", bookingID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgDeleteFailed)
		return
	}

	h.logger.Info("DELETE /bookings/%s - booking deleted", bookingID)
	handlers.RespondNoContent(w)
}
