package models

import (
	"time"

	"github.com/schedfy/dashboard-service/internal/domain"
)

// Request models

// CreateRuleRequest request to create a commission rule
type CreateRuleRequest struct {
	EntityID string `json:"entityId"`
	Name     string `json:"name"`

	AppliesTo string  `json:"appliesTo"`
	Type      string  `json:"type"`
	Value     float64 `json:"value"`

	ServiceIDs         []string `json:"serviceIds,omitempty"`
	ProfessionalIDs    []string `json:"professionalIds,omitempty"`
	ServiceCategoryIDs []string `json:"serviceCategoryIds,omitempty"`
}

// UpdateRuleRequest partial update of a commission rule.
// Nil fields are left unchanged.
type UpdateRuleRequest struct {
	Name               *string  `json:"name,omitempty"`
	Value              *float64 `json:"value,omitempty"`
	ServiceIDs         []string `json:"serviceIds,omitempty"`
	ProfessionalIDs    []string `json:"professionalIds,omitempty"`
	ServiceCategoryIDs []string `json:"serviceCategoryIds,omitempty"`
	IsActive           *bool    `json:"isActive,omitempty"`
}

// Response models

// RuleResponse commission rule DTO
type RuleResponse struct {
	ID       string `json:"id"`
	EntityID string `json:"entityId"`
	Name     string `json:"name"`

	AppliesTo string  `json:"appliesTo"`
	Type      string  `json:"type"`
	Value     float64 `json:"value"`

	ServiceIDs         []string `json:"serviceIds,omitempty"`
	ProfessionalIDs    []string `json:"professionalIds,omitempty"`
	ServiceCategoryIDs []string `json:"serviceCategoryIds,omitempty"`

	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RuleListResponse list of commission rules
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Conversion helpers

// ToDomainRule converts a create request into a domain rule.
// The id is assigned by the service.
func (r *CreateRuleRequest) ToDomainRule() *domain.CommissionRule {
	return &domain.CommissionRule{
		EntityID:           r.EntityID,
		Name:               r.Name,
		AppliesTo:          domain.CommissionAppliesTo(r.AppliesTo),
		Type:               domain.CommissionType(r.Type),
		Value:              r.Value,
		ServiceIDs:         r.ServiceIDs,
		ProfessionalIDs:    r.ProfessionalIDs,
		ServiceCategoryIDs: r.ServiceCategoryIDs,
		IsActive:           true,
	}
}

// FromDomainRule converts a domain rule into a DTO.
func FromDomainRule(rule *domain.CommissionRule) *RuleResponse {
	if rule == nil {
		return nil
	}

	return &RuleResponse{
		ID:                 rule.ID,
		EntityID:           rule.EntityID,
		Name:               rule.Name,
		AppliesTo:          string(rule.AppliesTo),
		Type:               string(rule.Type),
		Value:              rule.Value,
		ServiceIDs:         rule.ServiceIDs,
		ProfessionalIDs:    rule.ProfessionalIDs,
		ServiceCategoryIDs: rule.ServiceCategoryIDs,
		IsActive:           rule.IsActive,
		CreatedAt:          rule.CreatedAt,
		UpdatedAt:          rule.UpdatedAt,
	}
}

// FromDomainRuleList converts a list of domain rules into a DTO list.
func FromDomainRuleList(rules []*domain.CommissionRule) *RuleListResponse {
	resp := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(rules)),
	}
	for _, rule := range rules {
		resp.Rules = append(resp.Rules, *FromDomainRule(rule))
	}
	return resp
}
