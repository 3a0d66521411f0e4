package get_attribution_report

import "errors"

var (
	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("get_attribution_report: invalid input data")

	// ErrInvalidDateRange is returned when the period is malformed
	ErrInvalidDateRange = errors.New("get_attribution_report: invalid date range")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("get_attribution_report: internal error")
)
