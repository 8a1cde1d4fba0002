package attention

import (
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peakPrefs() domain.AttentionPreferences {
	return domain.AttentionPreferences{
		Role:      domain.RoleMaker,
		PeakStart: "09:00",
		PeakEnd:   "12:00",
	}
}

func TestAnalyzePeakHours_NilWhenUnset(t *testing.T) {
	items := []domain.ScheduledItem{mkItem("a", "09:00", 60, domain.CategoryCreate)}
	assert.Nil(t, AnalyzePeakHours(items, domain.AttentionPreferences{}, testDay))
}

func TestAnalyzePeakHours_NilWhenUnparsable(t *testing.T) {
	prefs := domain.AttentionPreferences{PeakStart: "nine", PeakEnd: "12:00"}
	assert.Nil(t, AnalyzePeakHours(nil, prefs, testDay))
}

func TestAnalyzePeakHours_MisplacedDecideItem(t *testing.T) {
	// One decide item at 14:00 against a 09:00-12:00 window.
	items := []domain.ScheduledItem{mkItem("d1", "14:00", 60, domain.CategoryDecide)}

	analysis := AnalyzePeakHours(items, peakPrefs(), testDay)
	require.NotNil(t, analysis)

	assert.Equal(t, 0, analysis.EffectivenessPct)
	assert.Equal(t, 0, analysis.InsideCount)
	assert.Equal(t, 1, analysis.OutsideCount)

	require.Len(t, analysis.Candidates, 1)
	c := analysis.Candidates[0]
	assert.Equal(t, "d1", c.ItemID)
	assert.Equal(t, 120, c.DistanceMin)
	assert.Equal(t, at("09:00"), c.SuggestedStart)
	assert.InDelta(t, 0.35, c.ImpactScore, 1e-9)
}

func TestAnalyzePeakHours_VacuousEffectiveness(t *testing.T) {
	// Only low-demand work scheduled: alignment is vacuously perfect.
	items := []domain.ScheduledItem{
		mkItem("r1", "14:00", 30, domain.CategoryReview),
		mkItem("x1", "15:00", 30, domain.CategoryConnect),
	}

	analysis := AnalyzePeakHours(items, peakPrefs(), testDay)
	require.NotNil(t, analysis)
	assert.Equal(t, 100, analysis.EffectivenessPct)
	assert.Empty(t, analysis.Candidates)
}

func TestAnalyzePeakHours_Utilization(t *testing.T) {
	// 90 scheduled minutes inside a 180-minute window.
	items := []domain.ScheduledItem{
		mkItem("a", "09:00", 60, domain.CategoryCreate),
		mkItem("b", "10:30", 30, domain.CategoryReview),
		mkItem("c", "14:00", 60, domain.CategoryConnect),
	}

	analysis := AnalyzePeakHours(items, peakPrefs(), testDay)
	require.NotNil(t, analysis)
	assert.Equal(t, 50, analysis.UtilizationPct)
	assert.Equal(t, 2, analysis.InsideCount)
	assert.Equal(t, 90, analysis.InsideMin)
}

func TestAnalyzePeakHours_UtilizationCapped(t *testing.T) {
	items := []domain.ScheduledItem{
		mkItem("a", "09:00", 400, domain.CategoryCreate),
	}

	analysis := AnalyzePeakHours(items, peakPrefs(), testDay)
	require.NotNil(t, analysis)
	assert.Equal(t, 100, analysis.UtilizationPct)
}

func TestAnalyzePeakHours_WindowBoundaries(t *testing.T) {
	// Start exactly at the window end is outside; at the start is inside.
	items := []domain.ScheduledItem{
		mkItem("edge-start", "09:00", 30, domain.CategoryCreate),
		mkItem("edge-end", "12:00", 30, domain.CategoryDecide),
	}

	analysis := AnalyzePeakHours(items, peakPrefs(), testDay)
	require.NotNil(t, analysis)
	assert.Equal(t, 1, analysis.InsideCount)
	assert.Equal(t, 1, analysis.OutsideCount)
	assert.Equal(t, 50, analysis.EffectivenessPct)

	require.Len(t, analysis.Candidates, 1)
	assert.Equal(t, "edge-end", analysis.Candidates[0].ItemID)
	assert.Equal(t, 0, analysis.Candidates[0].DistanceMin)
}

func TestAnalyzePeakHours_EarlyItemDistance(t *testing.T) {
	items := []domain.ScheduledItem{mkItem("c1", "06:00", 60, domain.CategoryCreate)}

	analysis := AnalyzePeakHours(items, peakPrefs(), testDay)
	require.NotNil(t, analysis)
	require.Len(t, analysis.Candidates, 1)
	assert.Equal(t, 180, analysis.Candidates[0].DistanceMin)
	assert.InDelta(t, 0.9*0.75, analysis.Candidates[0].ImpactScore, 1e-9)
}
