package get_attribution_report

import "github.com/schedfy/dashboard-service/internal/domain"

// Summarize computes the attribution summary over the given bookings
// and commission rules. Pure: no I/O, inputs are not mutated.
//
// Only completed bookings participate. Each one is attributed at most
// one commission rule, resolved in strict priority order: active
// service-scoped rules first, then professional-scoped, then
// service-category-scoped. Within a tier the first matching rule in
// the input list wins, so rule order is significant and callers must
// preserve it. A booking whose service, professional or category link
// cannot be resolved simply contributes zero commission.
func Summarize(bookings []domain.Booking, rules []*domain.CommissionRule) Summary {
	var summary Summary

	completed := 0
	for i := range bookings {
		b := &bookings[i]
		if !b.IsCompleted() {
			continue
		}
		completed++

		if b.HasDiscount() {
			summary.TotalDiscountAmount += b.Pricing.DiscountAmount
			summary.BookingsWithPromotion++
			summary.RevenueFromPromotions += b.Pricing.TotalPrice
		}

		if rule := resolveRule(b, rules); rule != nil {
			summary.TotalCommissionAmount += rule.Amount(b.Pricing.TotalPrice)
		}
	}

	if completed > 0 {
		summary.PromotionRate = float64(summary.BookingsWithPromotion) / float64(completed) * 100
	}

	return summary
}

// resolveRule picks the single commission rule for a booking, stopping
// at the first match of the highest-priority tier.
func resolveRule(b *domain.Booking, rules []*domain.CommissionRule) *domain.CommissionRule {
	serviceID := b.ServiceID()
	for _, rule := range rules {
		if rule.MatchesService(serviceID) {
			return rule
		}
	}

	professionalID := b.ProfessionalID()
	for _, rule := range rules {
		if rule.MatchesProfessional(professionalID) {
			return rule
		}
	}

	categoryID := b.ServiceCategoryID()
	for _, rule := range rules {
		if rule.MatchesServiceCategory(categoryID) {
			return rule
		}
	}

	return nil
}

// countCompleted returns the number of completed bookings in the list.
func countCompleted(bookings []domain.Booking) int {
	n := 0
	for i := range bookings {
		if bookings[i].IsCompleted() {
			n++
		}
	}
	return n
}
