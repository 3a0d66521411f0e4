package commissionrule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/schedfy/dashboard-service/internal/domain"
	"github.com/schedfy/dashboard-service/pkg/psqlbuilder"
)

// ruleColumns column list shared by all selects
var ruleColumns = []string{
	"id",
	"entity_id",
	"name",
	"applies_to",
	"commission_type",
	"value",
	"service_ids",
	"professional_ids",
	"service_category_ids",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository persistence for tenant commission rules
type Repository struct {
	db DBExecutor
}

// NewRepository creates a commission rule repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new commission rule.
func (r *Repository) Create(ctx context.Context, rule *domain.CommissionRule) (*domain.CommissionRule, error) {
	query, args, err := psqlbuilder.Insert("commission_rules").
		Columns(
			"id",
			"entity_id",
			"name",
			"applies_to",
			"commission_type",
			"value",
			"service_ids",
			"professional_ids",
			"service_category_ids",
			"is_active",
		).
		Values(
			rule.ID,
			rule.EntityID,
			rule.Name,
			rule.AppliesTo,
			rule.Type,
			rule.Value,
			pq.Array(rule.ServiceIDs),
			pq.Array(rule.ProfessionalIDs),
			pq.Array(rule.ServiceCategoryIDs),
			rule.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByID fetches a single commission rule.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.CommissionRule, error) {
	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("commission_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// ListByEntity fetches an entity's commission rules ordered by creation
// time. Attribution treats rule order as significant (first match wins
// within a priority tier), so the order must be stable.
func (r *Repository) ListByEntity(ctx context.Context, entityID string, includeInactive bool) ([]*domain.CommissionRule, error) {
	builder := psqlbuilder.Select(ruleColumns...).
		From("commission_rules").
		Where(squirrel.Eq{"entity_id": entityID}).
		OrderBy("created_at ASC", "id ASC")

	if !includeInactive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEntity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEntity - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var rules []*domain.CommissionRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByEntity - scan rule: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByEntity - iterate rows: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Update rewrites the mutable fields of a rule.
func (r *Repository) Update(ctx context.Context, rule *domain.CommissionRule) (*domain.CommissionRule, error) {
	query, args, err := psqlbuilder.Update("commission_rules").
		Set("name", rule.Name).
		Set("applies_to", rule.AppliesTo).
		Set("commission_type", rule.Type).
		Set("value", rule.Value).
		Set("service_ids", pq.Array(rule.ServiceIDs)).
		Set("professional_ids", pq.Array(rule.ProfessionalIDs)).
		Set("service_category_ids", pq.Array(rule.ServiceCategoryIDs)).
		Set("is_active", rule.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// Delete removes a commission rule.
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("commission_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.CommissionRule, error) {
	var (
		rule                 domain.CommissionRule
		serviceIDs           pq.StringArray
		professionalIDs      pq.StringArray
		serviceCategoryIDs   pq.StringArray
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&rule.ID,
		&rule.EntityID,
		&rule.Name,
		&rule.AppliesTo,
		&rule.Type,
		&rule.Value,
		&serviceIDs,
		&professionalIDs,
		&serviceCategoryIDs,
		&rule.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.ServiceIDs = serviceIDs
	rule.ProfessionalIDs = professionalIDs
	rule.ServiceCategoryIDs = serviceCategoryIDs
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
