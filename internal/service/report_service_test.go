package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/testutil"
)

func setupReportService(t *testing.T) (ReportService, repository.ItemRepo, repository.PreferenceRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	itemRepo := repository.NewSQLiteItemRepo(db)
	prefRepo := repository.NewSQLitePreferenceRepo(db)
	return NewReportService(itemRepo, prefRepo), itemRepo, prefRepo
}

func seedReportDay(t *testing.T, items repository.ItemRepo, prefs repository.PreferenceRepo) time.Time {
	t.Helper()
	ctx := context.Background()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	fixtures := []*domain.ScheduledItem{
		testutil.NewTestItem("Deep work", day.Add(9*time.Hour), testutil.WithDuration(120)),
		testutil.NewTestItem("Team meeting", day.Add(11*time.Hour),
			testutil.WithDuration(60), testutil.WithCategory(domain.CategoryConnect)),
		testutil.NewTestItem("Email and calls", day.Add(13*time.Hour),
			testutil.WithDuration(90), testutil.WithCategory(domain.CategoryConnect)),
	}
	for _, f := range fixtures {
		require.NoError(t, items.Create(ctx, f))
	}

	require.NoError(t, prefs.Save(ctx, testutil.NewTestPrefs(
		testutil.WithBudget(domain.CategoryConnect, 120),
	)))
	return day
}

func TestReportService_FullDay(t *testing.T) {
	svc, itemRepo, prefRepo := setupReportService(t)
	day := seedReportDay(t, itemRepo, prefRepo)

	req := app.NewReportRequest()
	req.Day = &day
	resp, err := svc.Report(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, resp.Items, 3)

	// connect: 60+90=150 against a 120 limit.
	found := false
	for _, b := range resp.Budgets {
		if b.Category == domain.CategoryConnect {
			found = true
			assert.Equal(t, 150, b.TotalMin)
			assert.True(t, b.OverBudget)
		}
	}
	require.True(t, found, "connect budget status missing")

	// One transition: create into connect, maker cost 4.
	require.Len(t, resp.Switches.Points, 1)
	assert.Equal(t, 4, resp.Switches.TotalCost)
	assert.Equal(t, 40, resp.Switches.CostScore)
	assert.False(t, resp.Switches.OverBudget)

	assert.Nil(t, resp.Peak, "no peak window configured")

	// connect pair with a 60 minute gap stays below the scatter threshold.
	require.Len(t, resp.Scattering, 1)
	assert.False(t, resp.Scattering[0].Scattered)

	// 100 - 10 (one category over budget), cost score under the deduction floor.
	assert.Equal(t, 90, resp.Health.Score)
	assert.Equal(t, domain.HealthHealthy, resp.Health.Status)
	assert.Nil(t, resp.Health.PeakEffectiveness)
}

func TestReportService_RecomputesAfterChange(t *testing.T) {
	svc, itemRepo, prefRepo := setupReportService(t)
	day := seedReportDay(t, itemRepo, prefRepo)
	ctx := context.Background()

	req := app.ReportRequest{Day: &day}
	before, err := svc.Report(ctx, req)
	require.NoError(t, err)

	// Dropping the meeting brings connect back under budget.
	meetingID := ""
	for _, it := range before.Items {
		if it.Title == "Team meeting" {
			meetingID = it.ID
		}
	}
	require.NotEmpty(t, meetingID)
	require.NoError(t, itemRepo.Delete(ctx, meetingID))

	after, err := svc.Report(ctx, req)
	require.NoError(t, err)
	assert.Len(t, after.Items, 2)
	assert.Greater(t, after.Health.Score, before.Health.Score)
}

func TestReportService_EmptyDay(t *testing.T) {
	svc, _, _ := setupReportService(t)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Report(context.Background(), app.ReportRequest{Day: &day})
	require.NoError(t, err)

	assert.Empty(t, resp.Items)
	assert.Empty(t, resp.Budgets)
	assert.Empty(t, resp.Suggestions)
	assert.Equal(t, 100, resp.Health.Score)
	assert.Equal(t, domain.HealthHealthy, resp.Health.Status)
}
