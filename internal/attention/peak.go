package attention

import (
	"math"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// peakDistanceNormMin is the distance from the peak window, in minutes, at
// which misplacement impact saturates. Product-tuning value.
const peakDistanceNormMin = 240

// RescheduleCandidate is a high-demand item found outside the peak window,
// with a suggested new slot at the window's start.
type RescheduleCandidate struct {
	ItemID         string
	Title          string
	Category       domain.AttentionCategory
	Start          time.Time
	DistanceMin    int
	ImpactScore    float64 // 0-1, distance x category weight
	SuggestedStart time.Time
}

// PeakAnalysis measures how well the day's work lines up with the user's
// declared peak-performance window.
type PeakAnalysis struct {
	WindowStartMin int
	WindowEndMin   int

	InsideCount  int
	OutsideCount int
	InsideMin    int

	// UtilizationPct is how much of the window is filled with scheduled work.
	UtilizationPct int
	// EffectivenessPct is the share of high-demand work placed inside the
	// window. Vacuously 100 when no high-demand work is scheduled.
	EffectivenessPct int

	Candidates []RescheduleCandidate
}

// AnalyzePeakHours scores the day's alignment with the user's peak window.
// Returns nil when no usable window is configured; that is the documented
// "analysis disabled" result, not an error.
func AnalyzePeakHours(items []domain.ScheduledItem, prefs domain.AttentionPreferences, day time.Time) *PeakAnalysis {
	ps, pe, ok := prefs.PeakWindow()
	if !ok {
		return nil
	}

	scheduled := categorized(dayItems(items, day))

	analysis := &PeakAnalysis{
		WindowStartMin: ps,
		WindowEndMin:   pe,
	}

	var highTotal, highInside int
	for _, it := range scheduled {
		start := minuteOfDay(it.StartTime, day)
		inside := start >= ps && start < pe

		if inside {
			analysis.InsideCount++
			dur := it.DurationMin
			if dur < 0 {
				dur = 0
			}
			analysis.InsideMin += dur
		} else {
			analysis.OutsideCount++
		}

		if !IsHighDemand(it.Category) {
			continue
		}
		highTotal++
		if inside {
			highInside++
			continue
		}

		dist := windowDistance(start, ps, pe)
		analysis.Candidates = append(analysis.Candidates, RescheduleCandidate{
			ItemID:         it.ID,
			Title:          it.Title,
			Category:       it.Category,
			Start:          it.StartTime,
			DistanceMin:    dist,
			ImpactScore:    misplacementImpact(dist, it.Category),
			SuggestedStart: atMinute(day, ps),
		})
	}

	windowMin := pe - ps
	analysis.UtilizationPct = cappedPct(analysis.InsideMin, windowMin)

	if highTotal == 0 {
		analysis.EffectivenessPct = 100
	} else {
		analysis.EffectivenessPct = int(math.Round(float64(highInside) / float64(highTotal) * 100))
	}

	return analysis
}

// windowDistance returns how many minutes a start offset sits outside the
// [ps, pe) window.
func windowDistance(startMin, ps, pe int) int {
	if startMin < ps {
		return ps - startMin
	}
	return startMin - pe
}

// misplacementImpact combines normalized window distance with the
// per-category weight into a 0-1 score.
func misplacementImpact(distMin int, cat domain.AttentionCategory) float64 {
	norm := float64(distMin) / peakDistanceNormMin
	if norm > 1 {
		norm = 1
	}
	return RescheduleWeight(cat) * norm
}

// cappedPct computes part/whole*100 rounded, capped at 100.
func cappedPct(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	pct := int(math.Round(float64(part) / float64(whole) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
