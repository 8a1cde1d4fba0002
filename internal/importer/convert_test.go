package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadence/internal/domain"
)

func TestConvert_Items(t *testing.T) {
	converted, err := Convert(&DaySnapshot{
		Day: "2025-06-02",
		Items: []ItemImport{
			{ID: "item-1", Title: "Write draft", Start: "09:30", DurationMin: 60, Category: "create", Status: "completed"},
			{Title: "Errand", Start: "15:00", DurationMin: 30},
		},
	})
	require.NoError(t, err)

	require.Len(t, converted.Items, 2)
	first := converted.Items[0]
	assert.Equal(t, "item-1", first.ID)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), first.StartTime)
	assert.Equal(t, domain.CategoryCreate, first.Category)
	assert.Equal(t, domain.ItemCompleted, first.Status)

	second := converted.Items[1]
	assert.NotEmpty(t, second.ID, "blank id gets generated")
	assert.Equal(t, domain.ItemActive, second.Status, "blank status defaults to active")
	assert.False(t, second.HasCategory())
	assert.Nil(t, converted.Preferences)
}

func TestConvert_Preferences(t *testing.T) {
	limit := 2
	converted, err := Convert(&DaySnapshot{
		Day: "2025-06-02",
		Preferences: &PreferencesImport{
			Role:        "multiplier",
			Budgets:     map[string]int{"connect": 120, "review": 90},
			SwitchLimit: &limit,
			PeakStart:   "09:00",
			PeakEnd:     "12:00",
		},
	})
	require.NoError(t, err)

	prefs := converted.Preferences
	require.NotNil(t, prefs)
	assert.Equal(t, domain.RoleMultiplier, prefs.Role)
	connectLimit, hasLimit := prefs.BudgetFor(domain.CategoryConnect)
	require.True(t, hasLimit)
	assert.Equal(t, 120, connectLimit)
	assert.Equal(t, 2, prefs.SwitchBudget())

	start, end, ok := prefs.PeakWindow()
	require.True(t, ok)
	assert.Equal(t, 9*60, start)
	assert.Equal(t, 12*60, end)
}

func TestConvert_DefaultsRoleToMaker(t *testing.T) {
	converted, err := Convert(&DaySnapshot{
		Day:         "2025-06-02",
		Preferences: &PreferencesImport{Budgets: map[string]int{"create": 240}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMaker, converted.Preferences.Role)
}
