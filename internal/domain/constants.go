package domain

// Business validation constants
const (
	MinCommissionPercent        = 0
	MaxCommissionPercent        = 100
	MaxRuleNameLength           = 120
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Date format for range query parameters (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// TerminalStatuses statuses that allow no further transitions
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ValidStatuses all statuses accepted from the booking API
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
	StatusBlocked,
}

// IsValidStatus reports whether s is a known booking status
func IsValidStatus(s BookingStatus) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidAppliesTo all commission rule scopes
var ValidAppliesTo = []CommissionAppliesTo{
	AppliesToService,
	AppliesToProfessional,
	AppliesToServiceCategory,
}

// IsValidAppliesTo reports whether a is a known commission rule scope
func IsValidAppliesTo(a CommissionAppliesTo) bool {
	for _, v := range ValidAppliesTo {
		if v == a {
			return true
		}
	}
	return false
}
