package commissionrule

import "errors"

var (
	// ErrRuleNotFound is returned when the commission rule does not exist
	ErrRuleNotFound = errors.New("commissionrule.repository: rule not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("commissionrule.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("commissionrule.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("commissionrule.repository: failed to scan row")
)
