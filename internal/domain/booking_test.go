package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_StatusPredicates(t *testing.T) {
	tests := []struct {
		status      BookingStatus
		terminal    bool
		active      bool
		cancellable bool
		confirmable bool
	}{
		{StatusPending, false, true, true, true},
		{StatusConfirmed, false, true, true, false},
		{StatusInProgress, false, true, true, false},
		{StatusCompleted, true, true, false, false},
		{StatusCancelled, true, false, false, false},
		{StatusNoShow, true, false, false, false},
		{StatusBlocked, false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}

			assert.Equal(t, tt.terminal, b.IsTerminal())
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.cancellable, b.CanBeCancelled())
			assert.Equal(t, tt.confirmable, b.CanBeConfirmed())
		})
	}
}

func TestBooking_ServiceCategoryID_UnexpandedService(t *testing.T) {
	b := &Booking{Service: Ref[Service]{ID: "svc-1"}}

	assert.Equal(t, "", b.ServiceCategoryID())
}

func TestBooking_HasDiscount(t *testing.T) {
	withDiscount := &Booking{Pricing: Pricing{DiscountAmount: 5}}
	withoutDiscount := &Booking{}

	assert.True(t, withDiscount.HasDiscount())
	assert.False(t, withoutDiscount.HasDiscount())
}

func TestCommissionRule_Amount(t *testing.T) {
	percentage := &CommissionRule{Type: CommissionPercentage, Value: 10}
	fixed := &CommissionRule{Type: CommissionFixed, Value: 7.5}

	assert.InDelta(t, 10.0, percentage.Amount(100), 1e-9)
	assert.InDelta(t, 7.5, fixed.Amount(100), 1e-9)
	assert.InDelta(t, 0.0, percentage.Amount(0), 1e-9)
}

func TestCommissionRule_Matching(t *testing.T) {
	rule := &CommissionRule{
		AppliesTo:  AppliesToService,
		ServiceIDs: []string{"svc-1", "svc-2"},
		IsActive:   true,
	}

	assert.True(t, rule.MatchesService("svc-1"))
	assert.False(t, rule.MatchesService("svc-3"))
	assert.False(t, rule.MatchesService(""))
	// Wrong scope never matches even with a populated set.
	assert.False(t, rule.MatchesProfessional("svc-1"))

	rule.IsActive = false
	assert.False(t, rule.MatchesService("svc-1"))
}
