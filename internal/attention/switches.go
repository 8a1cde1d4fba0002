package attention

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// SwitchPoint is one context switch between two adjacently scheduled items
// of different categories. Time is the start of the later item.
type SwitchPoint struct {
	Time     time.Time
	From     domain.AttentionCategory
	To       domain.AttentionCategory
	Cost     int
	Severity domain.Severity
}

// SwitchAnalysis summarizes a day's context switches.
type SwitchAnalysis struct {
	Points      []SwitchPoint
	TotalCost   int
	CostScore   int // normalized 0-100 presentation score
	SwitchLimit int
	OverBudget  bool
}

// AnalyzeSwitches walks the day's categorized items in start order and
// records a SwitchPoint for every adjacent pair whose categories differ.
// Cost comes from the role's asymmetric switch-cost table.
func AnalyzeSwitches(items []domain.ScheduledItem, prefs domain.AttentionPreferences, day time.Time) SwitchAnalysis {
	scheduled := categorized(dayItems(items, day))

	analysis := SwitchAnalysis{
		SwitchLimit: prefs.SwitchBudget(),
	}

	for i := 1; i < len(scheduled); i++ {
		prev, curr := scheduled[i-1], scheduled[i]
		if prev.Category == curr.Category {
			continue
		}
		cost := SwitchCost(prefs.Role, prev.Category, curr.Category)
		analysis.Points = append(analysis.Points, SwitchPoint{
			Time:     curr.StartTime,
			From:     prev.Category,
			To:       curr.Category,
			Cost:     cost,
			Severity: classifySeverity(cost),
		})
		analysis.TotalCost += cost
	}

	analysis.CostScore = costScore(analysis.TotalCost)
	analysis.OverBudget = len(analysis.Points) > analysis.SwitchLimit
	return analysis
}

// costScore normalizes a raw cost sum onto a 0-100 scale for display.
func costScore(totalCost int) int {
	score := totalCost * 10
	if score > 100 {
		return 100
	}
	return score
}
