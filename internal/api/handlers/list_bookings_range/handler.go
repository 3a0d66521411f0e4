package list_bookings_range

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/schedfy/dashboard-service/internal/api/handlers"
	"github.com/schedfy/dashboard-service/internal/domain"
	"github.com/schedfy/dashboard-service/internal/service/bookingstore"
)

const (
	msgMissingEntity = "entityId is required"
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgLoadFailed    = "failed to load bookings"
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

// ListResponse booking list payload
type ListResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}

// Handle GET /api/v1/entities/{entityId}/bookings/range?startDate&endDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entityID := mux.Vars(r)["entityId"]

	startDate, err := time.Parse(domain.DateFormat, r.URL.Query().Get("startDate"))
	if err != nil {
		h.logger.Warn("GET bookings/range - invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, r.URL.Query().Get("endDate"))
	if err != nil {
		h.logger.Warn("GET bookings/range - invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	bookings, err := h.store.LoadByDateRange(r.Context(), entityID, startDate, endDate)
	if err != nil {
		if errors.Is(err, bookingstore.ErrMissingEntityID) {
			h.logger.Warn("GET bookings/range - missing entityId")
			handlers.RespondBadRequest(w, msgMissingEntity)
			return
		}
		h.logger.Error("GET bookings/range - load failed for entity=%s: %v", entityID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgLoadFailed)
		return
	}

	h.logger.Info("GET bookings/range - %d bookings loaded for entity=%s", len(bookings), entityID)
	handlers.RespondJSON(w, http.StatusOK, ListResponse{Bookings: bookings})
}
