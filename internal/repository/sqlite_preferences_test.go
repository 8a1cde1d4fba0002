package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLitePreferenceRepo_DefaultsWhenUnset(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))

	prefs, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMaker, prefs.Role)
	assert.Empty(t, prefs.Budgets)
	assert.Nil(t, prefs.SwitchLimit)
	assert.Empty(t, prefs.PeakStart)
}

func TestSQLitePreferenceRepo_RoundTrip(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	prefs := testutil.NewTestPrefs(
		testutil.WithRole(domain.RoleMultiplier),
		testutil.WithBudget(domain.CategoryConnect, 120),
		testutil.WithBudget(domain.CategoryCreate, 180),
		testutil.WithSwitchLimit(5),
		testutil.WithPeakWindow("09:00", "12:00"),
	)
	require.NoError(t, repo.Save(ctx, prefs))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMultiplier, got.Role)
	assert.Equal(t, 120, got.Budgets[domain.CategoryConnect])
	assert.Equal(t, 180, got.Budgets[domain.CategoryCreate])
	require.NotNil(t, got.SwitchLimit)
	assert.Equal(t, 5, *got.SwitchLimit)
	assert.Equal(t, "09:00", got.PeakStart)
	assert.Equal(t, "12:00", got.PeakEnd)
}

func TestSQLitePreferenceRepo_SaveReplacesBudgets(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.NewTestPrefs(testutil.WithBudget(domain.CategoryReview, 60))
	require.NoError(t, repo.Save(ctx, first))

	second := testutil.NewTestPrefs(testutil.WithBudget(domain.CategoryConnect, 90))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	_, hasReview := got.Budgets[domain.CategoryReview]
	assert.False(t, hasReview, "old budgets should be replaced, not merged")
	assert.Equal(t, 90, got.Budgets[domain.CategoryConnect])
}
