package get_attribution_report

import "time"

// Request attribution report parameters
type Request struct {
	EntityID  string
	StartDate time.Time
	EndDate   time.Time
}

// Summary aggregated discount/commission/revenue statistics over the
// completed bookings of the period
type Summary struct {
	TotalDiscountAmount   float64 `json:"totalDiscountAmount"`
	TotalCommissionAmount float64 `json:"totalCommissionAmount"`
	BookingsWithPromotion int     `json:"bookingsWithPromotion"`
	RevenueFromPromotions float64 `json:"revenueFromPromotions"`
	// PromotionRate percentage of completed bookings that carried a
	// discount; 0 when there are no completed bookings
	PromotionRate float64 `json:"promotionRate"`
}

// Response full report payload
type Response struct {
	EntityID          string    `json:"entityId"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	CompletedBookings int       `json:"completedBookings"`
	Summary           Summary   `json:"summary"`
}
