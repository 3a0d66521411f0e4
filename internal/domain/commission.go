package domain

import "time"

// CommissionAppliesTo matching scope of a commission rule.
// Scopes are mutually exclusive: a rule matches by service, by
// professional, or by service category, never by more than one.
type CommissionAppliesTo string

const (
	AppliesToService         CommissionAppliesTo = "service"
	AppliesToProfessional    CommissionAppliesTo = "professional"
	AppliesToServiceCategory CommissionAppliesTo = "service_category"
)

// CommissionType how the rule value is interpreted
type CommissionType string

const (
	CommissionPercentage CommissionType = "percentage"
	CommissionFixed      CommissionType = "fixed"
)

// CommissionRule defines how much a professional/service earns per
// completed booking.
type CommissionRule struct {
	ID       string `json:"id"`
	EntityID string `json:"entityId"`
	Name     string `json:"name"`

	AppliesTo CommissionAppliesTo `json:"appliesTo"`
	Type      CommissionType      `json:"type"`
	// Value is a percentage in [0,100] or a fixed amount in major
	// currency units, depending on Type.
	Value float64 `json:"value"`

	ServiceIDs         []string `json:"serviceIds,omitempty"`
	ProfessionalIDs    []string `json:"professionalIds,omitempty"`
	ServiceCategoryIDs []string `json:"serviceCategoryIds,omitempty"`

	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MatchesService returns true if the rule is an active service-scoped
// rule listing the given service id.
func (r *CommissionRule) MatchesService(serviceID string) bool {
	return r.IsActive &&
		r.AppliesTo == AppliesToService &&
		serviceID != "" &&
		containsID(r.ServiceIDs, serviceID)
}

// MatchesProfessional returns true if the rule is an active
// professional-scoped rule listing the given professional id.
func (r *CommissionRule) MatchesProfessional(professionalID string) bool {
	return r.IsActive &&
		r.AppliesTo == AppliesToProfessional &&
		professionalID != "" &&
		containsID(r.ProfessionalIDs, professionalID)
}

// MatchesServiceCategory returns true if the rule is an active
// category-scoped rule listing the given category id.
func (r *CommissionRule) MatchesServiceCategory(categoryID string) bool {
	return r.IsActive &&
		r.AppliesTo == AppliesToServiceCategory &&
		categoryID != "" &&
		containsID(r.ServiceCategoryIDs, categoryID)
}

// Amount computes the commission earned on the given price.
func (r *CommissionRule) Amount(price float64) float64 {
	if r.Type == CommissionPercentage {
		return price * r.Value / 100
	}
	return r.Value
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
