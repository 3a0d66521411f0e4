package transition_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/domain"
	"github.com/schedfy/dashboard-service/internal/service/bookingstore"
)

const (
	msgUnknownAction   = "unknown transition action"
	msgBookingNotFound = "booking not found"
	msgTransitionFail  = "failed to transition booking"
)

// Transition actions accepted in the path
const (
	ActionConfirm  = "confirm"
	ActionComplete = "complete"
	ActionNoShow   = "no-show"
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

// Handle PATCH /api/v1/bookings/{bookingId}/{action}
// where action is one of confirm, complete, no-show
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	action := vars["action"]

	var (
		booking *domain.Booking
		err     error
	)

	switch action {
	case ActionConfirm:
		booking, err = h.store.Confirm(r.Context(), bookingID)
	case ActionComplete:
		booking, err = h.store.Complete(r.Context(), bookingID)
	case ActionNoShow:
		booking, err = h.store.MarkNoShow(r.Context(), bookingID)
	default:
		h.logger.Warn("PATCH /bookings/%s/%s - unknown action", bookingID, action)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	if err != nil {
		if errors.Is(err, bookingstore.ErrBookingNotFound) {
			h.logger.Warn("PATCH /bookings/%s/%s - booking not found", bookingID, action)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("PATCH /bookings/%s/%s - transition failed: %v", bookingID, action, err)
		handlers.RespondError(w, http.StatusBadGateway, msgTransitionFail)
		return
	}

	h.logger.Info("PATCH /bookings/%s/%s - booking transitioned to %s", bookingID, action, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
