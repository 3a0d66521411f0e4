package get_attribution_report

import (
	"context"
	"fmt"

	"github.com/schedfy/dashboard-service/internal/domain"
)

// UseCase builds the commission/promotion attribution report for an
// entity over a date range.
type UseCase struct {
	bookings BookingProvider
	rules    RuleProvider
	logger   Logger
}

// NewUseCase creates the attribution report use case.
func NewUseCase(bookings BookingProvider, rules RuleProvider, logger Logger) *UseCase {
	return &UseCase{
		bookings: bookings,
		rules:    rules,
		logger:   logger,
	}
}

// Execute loads the period's bookings and the entity's rules, then runs
// the pure attribution computation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAttributionReport: entity=%s, period=%s to %s",
		req.EntityID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAttributionReport: validation failed: %v", err)
		return nil, err
	}

	bookings, err := uc.bookings.LoadByDateRange(ctx, req.EntityID, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Error("GetAttributionReport: failed to load bookings for entity=%s: %v", req.EntityID, err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	// Inactive rules are fetched too: the engine gates on isActive
	// itself, and a rule deactivated mid-period must still preserve the
	// list order for the tie-break.
	rules, err := uc.rules.ListByEntity(ctx, req.EntityID, true)
	if err != nil {
		uc.logger.Error("GetAttributionReport: failed to load rules for entity=%s: %v", req.EntityID, err)
		return nil, fmt.Errorf("%w: failed to load commission rules: %v", ErrInternal, err)
	}

	summary := Summarize(bookings, rules)
	completed := countCompleted(bookings)

	uc.logger.Info("GetAttributionReport: entity=%s, completed=%d, withPromotion=%d, commission=%.2f",
		req.EntityID, completed, summary.BookingsWithPromotion, summary.TotalCommissionAmount)

	return &Response{
		EntityID:          req.EntityID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		CompletedBookings: completed,
		Summary:           summary,
	}, nil
}
