package commissionrules

import "errors"

var (
	// ErrRuleNotFound is returned when the commission rule does not exist
	ErrRuleNotFound = errors.New("commissionrules: rule not found")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("commissionrules: invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("commissionrules: internal error")
)
