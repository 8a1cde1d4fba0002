package attention

import (
	"math"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// HealthScore is the day-level attention health summary.
type HealthScore struct {
	Score  int // 0-100
	Status domain.HealthStatus

	// Inputs to the deduction formula, surfaced for explainability.
	OverBudgetCategories int
	SwitchCostScore      int
	PeakEffectiveness    *int // nil when no peak window is configured
}

// ScoreDay folds the analyzers into a single 0-100 score. The deduction
// constants are part of the reproducibility contract: identical inputs must
// always yield the identical score.
//
//	score = 100
//	      - min(40, over_budget_categories * 10)
//	      - min(30, max(0, cost_score - 50) / 50 * 30)
//	      - min(30, (100 - peak_effectiveness) * 0.3)   [peak window set]
func ScoreDay(items []domain.ScheduledItem, prefs domain.AttentionPreferences, day time.Time) HealthScore {
	result := HealthScore{}

	for _, b := range AnalyzeBudgets(items, prefs, day) {
		if b.OverBudget {
			result.OverBudgetCategories++
		}
	}

	switches := AnalyzeSwitches(items, prefs, day)
	result.SwitchCostScore = switches.CostScore

	score := 100.0
	score -= math.Min(40, float64(result.OverBudgetCategories)*10)
	score -= math.Min(30, math.Max(0, float64(switches.CostScore)-50)/50*30)

	if peak := AnalyzePeakHours(items, prefs, day); peak != nil {
		eff := peak.EffectivenessPct
		result.PeakEffectiveness = &eff
		score -= math.Min(30, float64(100-eff)*0.3)
	}

	result.Score = clampScore(int(math.Round(score)))
	result.Status = healthStatus(result.Score)
	return result
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func healthStatus(score int) domain.HealthStatus {
	switch {
	case score >= 80:
		return domain.HealthHealthy
	case score >= 60:
		return domain.HealthWarning
	default:
		return domain.HealthCritical
	}
}
