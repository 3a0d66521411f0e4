package get_attribution_report

import (
	"context"
	"errors"
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

type fakeBookingProvider struct {
	bookings []domain.Booking
	err      error
}

func (f *fakeBookingProvider) LoadByDateRange(_ context.Context, _ string, _, _ time.Time) ([]domain.Booking, error) {
	return f.bookings, f.err
}

type fakeRuleProvider struct {
	rules           []*domain.CommissionRule
	err             error
	includeInactive bool
}

func (f *fakeRuleProvider) ListByEntity(_ context.Context, _ string, includeInactive bool) ([]*domain.CommissionRule, error) {
	f.includeInactive = includeInactive
	return f.rules, f.err
}

func reportRequest() *Request {
	return &Request{
		EntityID:  "ent-1",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestUseCase_Execute(t *testing.T) {
	bookings := &fakeBookingProvider{bookings: []domain.Booking{
		completedBooking("bk-1", 25, 5),
		completedBooking("bk-2", 30, 0),
		{ID: "bk-3", Status: domain.StatusCancelled},
	}}
	rules := &fakeRuleProvider{rules: []*domain.CommissionRule{
		percentageRule("svc cut", domain.AppliesToService, 10),
	}}

	uc := NewUseCase(bookings, rules, noopLogger{})

	resp, err := uc.Execute(context.Background(), reportRequest())

	require.NoError(t, err)
	assert.Equal(t, "ent-1", resp.EntityID)
	assert.Equal(t, 2, resp.CompletedBookings)
	assert.InDelta(t, 5.5, resp.Summary.TotalCommissionAmount, 1e-9)
	assert.InDelta(t, 5.0, resp.Summary.TotalDiscountAmount, 1e-9)
	assert.InDelta(t, 50.0, resp.Summary.PromotionRate, 1e-9)
	assert.True(t, rules.includeInactive, "inactive rules must be fetched, the engine filters them")
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingProvider{}, &fakeRuleProvider{}, noopLogger{})

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing entity id", func(r *Request) { r.EntityID = "" }, ErrInvalidInput},
		{"zero start date", func(r *Request) { r.StartDate = time.Time{} }, ErrInvalidInput},
		{"end before start", func(r *Request) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }, ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := reportRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestUseCase_Execute_ProviderErrors(t *testing.T) {
	t.Run("booking load failure", func(t *testing.T) {
		bookings := &fakeBookingProvider{err: errors.New("gateway timeout")}
		uc := NewUseCase(bookings, &fakeRuleProvider{}, noopLogger{})

		_, err := uc.Execute(context.Background(), reportRequest())

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInternal))
	})

	t.Run("rule load failure", func(t *testing.T) {
		rules := &fakeRuleProvider{err: errors.New("db down")}
		uc := NewUseCase(&fakeBookingProvider{}, rules, noopLogger{})

		_, err := uc.Execute(context.Background(), reportRequest())

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInternal))
	})
}
