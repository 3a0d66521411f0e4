package bookingapi

import (
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
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(server.URL, 5*time.Second, noopLogger{}, nil, "test")
}

func TestClient_ListByEntity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/bookings/entity/ent-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "bk-1", "entityId": "ent-1", "status": "pending",
			 "pricing": {"basePrice": 30, "totalPrice": 30, "currency": "EUR"}},
			{"id": "bk-2", "entityId": "ent-1", "status": "confirmed",
			 "pricing": {"basePrice": 45, "totalPrice": 45, "currency": "EUR"}}
		]`))
	})

	bookings, err := client.ListByEntity(context.Background(), "ent-1")

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "bk-1", bookings[0].ID)
	assert.Equal(t, domain.StatusConfirmed, bookings[1].Status)
}

func TestClient_ListByDateRange_QueryParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/entity/ent-1/range", r.URL.Path)
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-03-31", r.URL.Query().Get("endDate"))

		_, _ = w.Write([]byte(`[]`))
	})

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	bookings, err := client.ListByDateRange(context.Background(), "ent-1", start, end)

	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestClient_Create_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)

		var req CreateBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ent-1", req.EntityID)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "bk-new", "entityId": "ent-1", "status": "pending",
			"pricing": {"basePrice": 30, "totalPrice": 30, "currency": "EUR"}}`))
	})

	booking, err := client.Create(context.Background(), &CreateBookingRequest{
		EntityID:  "ent-1",
		StartTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "bk-new", booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status)
}

func TestClient_Create_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{
			"message": "slot already taken",
			"errors": {"conflicts": [
				{"id": "bk-existing", "entityId": "ent-1", "status": "confirmed",
				 "pricing": {"basePrice": 30, "totalPrice": 30, "currency": "EUR"}}
			]}
		}`))
	})

	_, err := client.Create(context.Background(), &CreateBookingRequest{EntityID: "ent-1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "slot already taken", conflict.Message)
	require.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, "bk-existing", conflict.Conflicts[0].ID)
}

func TestClient_Create_GenericFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "database unavailable"}`))
	})

	_, err := client.Create(context.Background(), &CreateBookingRequest{EntityID: "ent-1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequestFailed))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestClient_Mutations_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Confirm(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrBookingNotFound))

	err = client.Delete(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrBookingNotFound))
}

func TestClient_Cancel_SendsReason(t *testing.T) {
	reason := "client asked to reschedule"

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/bk-1/cancel", r.URL.Path)

		var req CancelBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Reason)
		assert.Equal(t, reason, *req.Reason)

		_, _ = w.Write([]byte(`{"id": "bk-1", "entityId": "ent-1", "status": "cancelled",
			"pricing": {"basePrice": 30, "totalPrice": 30, "currency": "EUR"}}`))
	})

	booking, err := client.Cancel(context.Background(), "bk-1", &reason)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, booking.Status)
}

func TestClient_CheckAvailability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/check-availability", r.URL.Path)

		_, _ = w.Write([]byte(`{"available": false, "conflicts": [
			{"id": "bk-1", "entityId": "ent-1", "status": "confirmed",
			 "pricing": {"basePrice": 30, "totalPrice": 30, "currency": "EUR"}}
		]}`))
	})

	result, err := client.CheckAvailability(context.Background(), &AvailabilityRequest{
		ServiceID: "svc-1",
		StartTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.True(t, result.HasConflicts())
}
