package attention

import (
	"math"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

const (
	// scatterGapThresholdMin is the average idle gap beyond which
	// same-category work counts as scattered. Product-tuning value.
	scatterGapThresholdMin = 120
	// scatterHighTotalMin is the total idle gap beyond which scattering is
	// severe.
	scatterHighTotalMin = 240
	// consolidationSavingsRate is the conservative share of idle gap time
	// a consolidation is estimated to recover.
	consolidationSavingsRate = 0.1
)

// ScatterResult describes how spread out one category's work is across the
// day.
type ScatterResult struct {
	Category    domain.AttentionCategory
	ItemIDs     []string
	TotalGapMin int
	AvgGapMin   int
	Scattered   bool
	Severity    domain.Severity
	SavedMinEst int
}

// AnalyzeScattering measures idle gaps between consecutive same-category
// items. Categories with fewer than two items cannot be scattered and are
// omitted. Output follows canonical category order.
func AnalyzeScattering(items []domain.ScheduledItem, day time.Time) []ScatterResult {
	scheduled := categorized(dayItems(items, day))

	grouped := make(map[domain.AttentionCategory][]domain.ScheduledItem)
	for _, it := range scheduled {
		grouped[it.Category] = append(grouped[it.Category], it)
	}

	var out []ScatterResult
	for _, cat := range domain.Categories() {
		members := grouped[cat]
		if len(members) < 2 {
			continue
		}

		totalGap := 0
		for i := 1; i < len(members); i++ {
			gap := int(members[i].StartTime.Sub(members[i-1].EndTime()).Minutes())
			if gap < 0 {
				// Overlapping items contribute no idle time.
				gap = 0
			}
			totalGap += gap
		}
		avgGap := totalGap / (len(members) - 1)

		ids := make([]string, len(members))
		for i, m := range members {
			ids[i] = m.ID
		}

		out = append(out, ScatterResult{
			Category:    cat,
			ItemIDs:     ids,
			TotalGapMin: totalGap,
			AvgGapMin:   avgGap,
			Scattered:   avgGap > scatterGapThresholdMin,
			Severity:    scatterSeverity(totalGap),
			SavedMinEst: int(math.Round(float64(totalGap) * consolidationSavingsRate)),
		})
	}
	return out
}

// scatterSeverity buckets total idle-gap minutes.
func scatterSeverity(totalGapMin int) domain.Severity {
	switch {
	case totalGapMin > scatterHighTotalMin:
		return domain.SeverityHigh
	case totalGapMin > scatterGapThresholdMin:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
