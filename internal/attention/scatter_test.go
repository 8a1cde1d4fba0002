package attention

import (
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scatteredConnectDay() []domain.ScheduledItem {
	return []domain.ScheduledItem{
		mkItem("x1", "09:00", 15, domain.CategoryConnect),
		mkItem("x2", "11:30", 15, domain.CategoryConnect),
		mkItem("x3", "14:00", 15, domain.CategoryConnect),
		mkItem("x4", "16:30", 15, domain.CategoryConnect),
	}
}

func TestAnalyzeScattering_SpreadConnectWork(t *testing.T) {
	results := AnalyzeScattering(scatteredConnectDay(), testDay)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, domain.CategoryConnect, r.Category)
	assert.Equal(t, []string{"x1", "x2", "x3", "x4"}, r.ItemIDs)
	assert.Equal(t, 405, r.TotalGapMin)
	assert.Equal(t, 135, r.AvgGapMin)
	assert.True(t, r.Scattered)
	assert.Equal(t, domain.SeverityHigh, r.Severity)
	assert.Equal(t, 41, r.SavedMinEst)
}

func TestAnalyzeScattering_SingleItemNotScattered(t *testing.T) {
	items := []domain.ScheduledItem{mkItem("a", "09:00", 60, domain.CategoryCreate)}
	assert.Empty(t, AnalyzeScattering(items, testDay))
}

func TestAnalyzeScattering_TightBlockNotScattered(t *testing.T) {
	items := []domain.ScheduledItem{
		mkItem("a", "09:00", 30, domain.CategoryReview),
		mkItem("b", "09:45", 30, domain.CategoryReview),
		mkItem("c", "10:30", 30, domain.CategoryReview),
	}

	results := AnalyzeScattering(items, testDay)
	require.Len(t, results, 1)
	assert.False(t, results[0].Scattered)
	assert.Equal(t, domain.SeverityLow, results[0].Severity)
	assert.Equal(t, 30, results[0].TotalGapMin)
	assert.Equal(t, 15, results[0].AvgGapMin)
}

func TestAnalyzeScattering_OverlapClampedToZero(t *testing.T) {
	items := []domain.ScheduledItem{
		mkItem("a", "09:00", 90, domain.CategoryCreate),
		mkItem("b", "10:00", 30, domain.CategoryCreate), // starts before a ends
		mkItem("c", "13:00", 30, domain.CategoryCreate),
	}

	results := AnalyzeScattering(items, testDay)
	require.Len(t, results, 1)
	// Overlap contributes zero, not negative: gap is only 10:30 -> 13:00.
	assert.Equal(t, 150, results[0].TotalGapMin)
}

func TestAnalyzeScattering_CategoriesInDeclarationOrder(t *testing.T) {
	items := []domain.ScheduledItem{
		mkItem("x1", "09:00", 15, domain.CategoryConnect),
		mkItem("x2", "12:00", 15, domain.CategoryConnect),
		mkItem("c1", "10:00", 15, domain.CategoryCreate),
		mkItem("c2", "15:00", 15, domain.CategoryCreate),
	}

	results := AnalyzeScattering(items, testDay)
	require.Len(t, results, 2)
	assert.Equal(t, domain.CategoryCreate, results[0].Category)
	assert.Equal(t, domain.CategoryConnect, results[1].Category)
}

func TestAnalyzeScattering_GapMeasuredFromItemEnd(t *testing.T) {
	// 09:00+120m ends 11:00; the idle gap to 13:00 is 120, not the
	// 240 a start-to-start measurement would give.
	items := []domain.ScheduledItem{
		mkItem("a", "09:00", 120, domain.CategoryCreate),
		mkItem("b", "13:00", 30, domain.CategoryCreate),
	}

	results := AnalyzeScattering(items, testDay)
	require.Len(t, results, 1)
	assert.Equal(t, 120, results[0].TotalGapMin)
	assert.Equal(t, 120, results[0].AvgGapMin)
	assert.False(t, results[0].Scattered, "avg gap of exactly 120 is the threshold, not past it")
}

func TestAnalyzeScattering_MediumSeverity(t *testing.T) {
	items := []domain.ScheduledItem{
		mkItem("a", "09:00", 30, domain.CategoryDecide),
		mkItem("b", "12:00", 30, domain.CategoryDecide),
	}

	results := AnalyzeScattering(items, testDay)
	require.Len(t, results, 1)
	assert.Equal(t, 150, results[0].TotalGapMin)
	assert.True(t, results[0].Scattered)
	assert.Equal(t, domain.SeverityMedium, results[0].Severity)
	assert.Equal(t, 15, results[0].SavedMinEst)
}
