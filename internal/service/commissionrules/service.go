package commissionrules

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/schedfy/dashboard-service/internal/domain"
	ruleRepo "github.com/schedfy/dashboard-service/internal/infra/storage/commissionrule"
	"github.com/schedfy/dashboard-service/internal/service/commissionrules/models"
)

// Service manages a tenant's commission rules.
type Service struct {
	repo   RuleRepository
	logger Logger
}

// NewService creates a commission rules service.
func NewService(repo RuleRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and stores a new commission rule. The rule is
// created active with a generated id.
func (s *Service) Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: new commission rule for entity=%s, appliesTo=%s", req.EntityID, req.AppliesTo)

	rule := req.ToDomainRule()
	if err := validateRule(rule); err != nil {
		s.logger.Warn("Create: validation failed for entity=%s: %v", req.EntityID, err)
		return nil, err
	}

	rule.ID = uuid.NewString()

	created, err := s.repo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error for entity=%s: %v", req.EntityID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: commission rule id=%s created for entity=%s", created.ID, created.EntityID)
	return models.FromDomainRule(created), nil
}

// ListByEntity returns an entity's commission rules in creation order.
func (s *Service) ListByEntity(ctx context.Context, entityID string, includeInactive bool) (*models.RuleListResponse, error) {
	s.logger.Info("ListByEntity: fetching rules for entity=%s, includeInactive=%t", entityID, includeInactive)

	if entityID == "" {
		return nil, fmt.Errorf("%w: entityId is required", ErrInvalidInput)
	}

	rules, err := s.repo.ListByEntity(ctx, entityID, includeInactive)
	if err != nil {
		s.logger.Error("ListByEntity: repository error for entity=%s: %v", entityID, err)
		return nil, fmt.Errorf("%w: ListByEntity - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByEntity: fetched %d rules for entity=%s", len(rules), entityID)
	return models.FromDomainRuleList(rules), nil
}

// Update applies a partial update to an existing rule.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Update: commission rule id=%s", id)

	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Update: rule id=%s not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	applyPatch(rule, req)

	if err := validateRule(rule); err != nil {
		s.logger.Warn("Update: validation failed for rule id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, rule)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: commission rule id=%s updated", id)
	return models.FromDomainRule(updated), nil
}

// Delete removes a commission rule.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: commission rule id=%s", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: rule id=%s not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: commission rule id=%s deleted", id)
	return nil
}

// Helpers

func applyPatch(rule *domain.CommissionRule, req *models.UpdateRuleRequest) {
	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.Value != nil {
		rule.Value = *req.Value
	}
	if req.ServiceIDs != nil {
		rule.ServiceIDs = req.ServiceIDs
	}
	if req.ProfessionalIDs != nil {
		rule.ProfessionalIDs = req.ProfessionalIDs
	}
	if req.ServiceCategoryIDs != nil {
		rule.ServiceCategoryIDs = req.ServiceCategoryIDs
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
}

// validateRule enforces the rule invariants: a known mutually exclusive
// scope with a non-empty matching set, and a value within bounds.
func validateRule(rule *domain.CommissionRule) error {
	if rule.EntityID == "" {
		return fmt.Errorf("%w: entityId is required", ErrInvalidInput)
	}

	if rule.Name == "" || len(rule.Name) > domain.MaxRuleNameLength {
		return fmt.Errorf("%w: name is required and must not exceed %d characters",
			ErrInvalidInput, domain.MaxRuleNameLength)
	}

	if !domain.IsValidAppliesTo(rule.AppliesTo) {
		return fmt.Errorf("%w: unknown appliesTo %q", ErrInvalidInput, rule.AppliesTo)
	}

	switch rule.Type {
	case domain.CommissionPercentage:
		if rule.Value < domain.MinCommissionPercent || rule.Value > domain.MaxCommissionPercent {
			return fmt.Errorf("%w: percentage value must be in [%d, %d]",
				ErrInvalidInput, domain.MinCommissionPercent, domain.MaxCommissionPercent)
		}
	case domain.CommissionFixed:
		if rule.Value < 0 {
			return fmt.Errorf("%w: fixed value must not be negative", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown commission type %q", ErrInvalidInput, rule.Type)
	}

	switch rule.AppliesTo {
	case domain.AppliesToService:
		if len(rule.ServiceIDs) == 0 {
			return fmt.Errorf("%w: serviceIds must not be empty for service rules", ErrInvalidInput)
		}
	case domain.AppliesToProfessional:
		if len(rule.ProfessionalIDs) == 0 {
			return fmt.Errorf("%w: professionalIds must not be empty for professional rules", ErrInvalidInput)
		}
	case domain.AppliesToServiceCategory:
		if len(rule.ServiceCategoryIDs) == 0 {
			return fmt.Errorf("%w: serviceCategoryIds must not be empty for category rules", ErrInvalidInput)
		}
	}

	return nil
}
