package commissionrule

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedfy/dashboard-service/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func ruleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "entity_id", "name", "applies_to", "commission_type", "value",
		"service_ids", "professional_ids", "service_category_ids",
		"is_active", "created_at", "updated_at",
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO commission_rules")).
		WithArgs(
			"rule-1", "ent-1", "VIP haircut cut", "service", "percentage", 10.0,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), true,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	rule := &domain.CommissionRule{
		ID:         "rule-1",
		EntityID:   "ent-1",
		Name:       "VIP haircut cut",
		AppliesTo:  domain.AppliesToService,
		Type:       domain.CommissionPercentage,
		Value:      10,
		ServiceIDs: []string{"svc-1"},
		IsActive:   true,
	}

	created, err := repo.Create(context.Background(), rule)

	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM commission_rules")).
		WithArgs("rule-1").
		WillReturnRows(ruleRows().AddRow(
			"rule-1", "ent-1", "VIP haircut cut", "service", "percentage", 10.0,
			"{svc-1,svc-2}", "{}", "{}", true, now, now,
		))

	rule, err := repo.GetByID(context.Background(), "rule-1")

	require.NoError(t, err)
	assert.Equal(t, "ent-1", rule.EntityID)
	assert.Equal(t, domain.AppliesToService, rule.AppliesTo)
	assert.Equal(t, []string{"svc-1", "svc-2"}, []string(rule.ServiceIDs))
	assert.True(t, rule.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM commission_rules")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.True(t, errors.Is(err, ErrRuleNotFound))
}

func TestRepository_ListByEntity(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC, id ASC")).
		WithArgs("ent-1").
		WillReturnRows(ruleRows().
			AddRow("rule-1", "ent-1", "first", "service", "percentage", 10.0,
				"{svc-1}", "{}", "{}", true, now, now).
			AddRow("rule-2", "ent-1", "second", "professional", "fixed", 5.0,
				"{}", "{pro-1}", "{}", false, now, now))

	rules, err := repo.ListByEntity(context.Background(), "ent-1", true)

	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "rule-1", rules[0].ID)
	assert.Equal(t, "rule-2", rules[1].ID)
	assert.False(t, rules[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByEntity_ActiveOnly(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("is_active")).
		WithArgs("ent-1", true).
		WillReturnRows(ruleRows())

	rules, err := repo.ListByEntity(context.Background(), "ent-1", false)

	require.NoError(t, err)
	assert.Empty(t, rules)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE commission_rules")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &domain.CommissionRule{ID: "missing"})

	assert.True(t, errors.Is(err, ErrRuleNotFound))
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM commission_rules")).
		WithArgs("rule-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "rule-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM commission_rules")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")

	assert.True(t, errors.Is(err, ErrRuleNotFound))
}

func TestRepository_ExecErrorWrapped(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM commission_rules")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListByEntity(context.Background(), "ent-1", true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExecQuery))
}
