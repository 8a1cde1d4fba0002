package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/testutil"
)

func setupPreferenceService(t *testing.T) PreferenceService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewPreferenceService(repository.NewSQLitePreferenceRepo(db))
}

func TestPreferenceService_DefaultsWhenUnset(t *testing.T) {
	svc := setupPreferenceService(t)

	prefs, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMaker, prefs.Role)
	assert.Empty(t, prefs.Budgets)

	_, _, ok := prefs.PeakWindow()
	assert.False(t, ok)
}

func TestPreferenceService_SaveRoundTrip(t *testing.T) {
	svc := setupPreferenceService(t)
	ctx := context.Background()

	saved := testutil.NewTestPrefs(
		testutil.WithRole(domain.RoleMarker),
		testutil.WithBudget(domain.CategoryConnect, 120),
		testutil.WithSwitchLimit(2),
		testutil.WithPeakWindow("09:00", "12:00"),
	)
	require.NoError(t, svc.Save(ctx, saved))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMarker, got.Role)
	limit, hasLimit := got.BudgetFor(domain.CategoryConnect)
	require.True(t, hasLimit)
	assert.Equal(t, 120, limit)
	assert.Equal(t, 2, got.SwitchBudget())

	start, end, ok := got.PeakWindow()
	require.True(t, ok)
	assert.Equal(t, 540, start)
	assert.Equal(t, 720, end)
}

func TestPreferenceService_Save_RejectsInvalid(t *testing.T) {
	svc := setupPreferenceService(t)
	ctx := context.Background()

	badRole := testutil.NewTestPrefs()
	badRole.Role = "wizard"
	assert.Error(t, svc.Save(ctx, badRole))

	badCat := testutil.NewTestPrefs()
	badCat.Budgets["napping"] = 60
	assert.Error(t, svc.Save(ctx, badCat))

	badClock := testutil.NewTestPrefs(testutil.WithPeakWindow("morning", "12:00"))
	assert.Error(t, svc.Save(ctx, badClock))
}

func TestPreferenceService_Save_BlankRoleDefaultsToMaker(t *testing.T) {
	svc := setupPreferenceService(t)
	ctx := context.Background()

	prefs := testutil.NewTestPrefs()
	prefs.Role = ""
	require.NoError(t, svc.Save(ctx, prefs))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMaker, got.Role)
}
