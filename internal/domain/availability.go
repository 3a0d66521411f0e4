package domain

// AvailabilityResult outcome of a server-side availability check for a
// requested time interval
type AvailabilityResult struct {
	Available bool      `json:"available"`
	Conflicts []Booking `json:"conflicts,omitempty"`
}

// HasConflicts returns true if the server reported overlapping bookings
func (a *AvailabilityResult) HasConflicts() bool {
	return len(a.Conflicts) > 0
}
