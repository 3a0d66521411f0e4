package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedfy/dashboard-service/internal/domain"
	"github.com/schedfy/dashboard-service/internal/integrations/bookingapi"
	"github.com/schedfy/dashboard-service/internal/service/bookingstore"
	"github.com/schedfy/dashboard-service/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeStore struct {
	booking *domain.Booking
	err     error
}

func (f *fakeStore) Create(_ context.Context, _ *bookingapi.CreateBookingRequest) (*domain.Booking, error) {
	return f.booking, f.err
}

func postBooking(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validRequest() *bookingapi.CreateBookingRequest {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	return &bookingapi.CreateBookingRequest{
		EntityID:  "ent-1",
		ClientID:  ptr.Ptr("client-1"),
		ServiceID: ptr.Ptr("svc-1"),
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
	}
}

func TestHandler_Created(t *testing.T) {
	store := &fakeStore{booking: &domain.Booking{ID: "bk-1", EntityID: "ent-1", Status: domain.StatusPending}}
	h := NewHandler(store, noopLogger{})

	rec := postBooking(t, h, validRequest())

	require.Equal(t, http.StatusCreated, rec.Code)

	var booking domain.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, "bk-1", booking.ID)
}

func TestHandler_Conflict(t *testing.T) {
	store := &fakeStore{err: &bookingstore.ConflictError{
		Message:   "slot already taken",
		Conflicts: []domain.Booking{{ID: "bk-existing", Status: domain.StatusConfirmed}},
	}}
	h := NewHandler(store, noopLogger{})

	rec := postBooking(t, h, validRequest())

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Errors  struct {
			Conflicts []domain.Booking `json:"conflicts"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	require.Len(t, resp.Errors.Conflicts, 1)
	assert.Equal(t, "bk-existing", resp.Errors.Conflicts[0].ID)
}

func TestHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *bookingapi.CreateBookingRequest)
	}{
		{"missing entity id", func(r *bookingapi.CreateBookingRequest) { r.EntityID = "" }},
		{"end before start", func(r *bookingapi.CreateBookingRequest) { r.EndTime = r.StartTime.Add(-time.Hour) }},
		{"zero interval", func(r *bookingapi.CreateBookingRequest) { r.EndTime = r.StartTime }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeStore{}, noopLogger{})

			req := validRequest()
			tt.mutate(req)

			rec := postBooking(t, h, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeStore{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UpstreamFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("gateway timeout")}
	h := NewHandler(store, noopLogger{})

	rec := postBooking(t, h, validRequest())

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
