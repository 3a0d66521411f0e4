package get_attribution_report

import "fmt"

// validateRequest validates the report parameters
func validateRequest(req *Request) error {
	if req.EntityID == "" {
		return fmt.Errorf("%w: entityId is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidDateRange)
	}

	return nil
}
