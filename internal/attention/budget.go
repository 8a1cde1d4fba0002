package attention

import (
	"math"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// BudgetStatus reports one category's scheduled load against its daily limit.
type BudgetStatus struct {
	Category   domain.AttentionCategory
	ItemsCount int
	TotalMin   int
	LimitMin   int
	HasLimit   bool
	UsagePct   float64
	OverBudget bool
}

// AnalyzeBudgets computes per-category usage against the user's daily
// attention budgets for the given day. Output order follows the canonical
// category declaration order. Categories with no items and no meaningful
// limit are omitted to keep the report free of noise.
func AnalyzeBudgets(items []domain.ScheduledItem, prefs domain.AttentionPreferences, day time.Time) []BudgetStatus {
	scheduled := categorized(dayItems(items, day))

	totals := make(map[domain.AttentionCategory]int)
	counts := make(map[domain.AttentionCategory]int)
	for _, it := range scheduled {
		dur := it.DurationMin
		if dur < 0 {
			dur = 0
		}
		totals[it.Category] += dur
		counts[it.Category]++
	}

	var out []BudgetStatus
	for _, cat := range domain.Categories() {
		limit, hasLimit := prefs.BudgetFor(cat)
		count := counts[cat]
		if count == 0 && (!hasLimit || limit == 0) {
			continue
		}

		total := totals[cat]
		status := BudgetStatus{
			Category:   cat,
			ItemsCount: count,
			TotalMin:   total,
			LimitMin:   limit,
			HasLimit:   hasLimit,
		}
		if hasLimit {
			status.UsagePct = usagePct(total, limit)
			status.OverBudget = total > limit
		}
		out = append(out, status)
	}
	return out
}

// usagePct computes total/limit*100 with a defined answer for a zero limit.
func usagePct(totalMin, limitMin int) float64 {
	if limitMin == 0 {
		if totalMin > 0 {
			return 100
		}
		return 0
	}
	return roundPct(float64(totalMin) / float64(limitMin) * 100)
}

// roundPct rounds to one decimal place for stable, comparable output.
func roundPct(pct float64) float64 {
	return math.Round(pct*10) / 10
}
