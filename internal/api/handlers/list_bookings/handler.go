package list_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/domain"
)

const msgLoadFailed = "failed to load bookings"

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

// ListResponse booking list payload
type ListResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}

// Handle GET /api/v1/{entities|clients|professionals|services}/{id}/bookings
//
// One handler serves all four scope routes; the mux path var determines
// which dimension is set.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scope := domain.BookingScope{
		EntityID:       vars["entityId"],
		ClientID:       vars["clientId"],
		ProfessionalID: vars["professionalId"],
		ServiceID:      vars["serviceId"],
	}

	bookings, err := h.store.Load(r.Context(), scope)
	if err != nil {
		h.logger.Error("GET bookings - load failed: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgLoadFailed)
		return
	}

	h.logger.Info("GET bookings - %d bookings loaded", len(bookings))
	handlers.RespondJSON(w, http.StatusOK, ListResponse{Bookings: bookings})
}
