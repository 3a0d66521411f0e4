package domain

// BookingScope the single filter dimension by which a booking list fetch
// is parameterized. Exactly one field is expected to be set; when more
// than one is set, resolution order is entity, client, professional,
// service. An empty scope deliberately fetches nothing.
type BookingScope struct {
	EntityID       string
	ClientID       string
	ProfessionalID string
	ServiceID      string
}

// IsEmpty returns true if no scope dimension is set
func (s BookingScope) IsEmpty() bool {
	return s.EntityID == "" && s.ClientID == "" && s.ProfessionalID == "" && s.ServiceID == ""
}
