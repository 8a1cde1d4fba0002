package attention

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

const (
	// productiveStartMin/productiveEndMin bound the coarse productive-hours
	// band used for energy alignment when no peak window applies.
	productiveStartMin = 8 * 60
	productiveEndMin   = 16 * 60

	// packBufferMin is the gap left between batched items when repacking.
	packBufferMin = 10
)

// ProposedChange is one concrete edit a suggestion asks for.
type ProposedChange struct {
	ItemID      string
	NewStart    *time.Time
	NewCategory *domain.AttentionCategory
	Reasoning   string
}

// Suggestion is a ranked, actionable optimization with kind-specific
// proposed changes. Suggestions are recomputed fresh on every call and
// their IDs are deterministic functions of the input, never random.
type Suggestion struct {
	ID            string
	Kind          domain.SuggestionKind
	Impact        domain.Impact
	Confidence    float64
	TargetItemIDs []string
	Changes       []ProposedChange
	Benefit       string
}

// RankScore is the value suggestions are ordered by: impact weight times
// confidence. Ties keep detection order (stable sort).
func (s Suggestion) RankScore() float64 {
	return float64(ImpactWeight(s.Impact)) * s.Confidence
}

// ImpactWeight maps an impact level onto the ranking scale.
func ImpactWeight(impact domain.Impact) int {
	switch impact {
	case domain.ImpactCritical:
		return 4
	case domain.ImpactHigh:
		return 3
	case domain.ImpactMedium:
		return 2
	default:
		return 1
	}
}

// GenerateSuggestions runs the peak, scattering, and energy heuristics over
// the day and returns their suggestions ranked by impact-weighted
// confidence.
func GenerateSuggestions(items []domain.ScheduledItem, prefs domain.AttentionPreferences, day time.Time) []Suggestion {
	all := dayItems(items, day)

	var suggestions []Suggestion
	targeted := make(map[string]bool)

	suggestions = append(suggestions, peakSuggestions(all, prefs, day, targeted)...)
	suggestions = append(suggestions, consolidationSuggestions(all, prefs, day)...)
	suggestions = append(suggestions, energySuggestions(all, day, targeted)...)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].RankScore() > suggestions[j].RankScore()
	})
	return suggestions
}

// peakSuggestions turns peak-window misalignment into reschedule (single
// item) or batch (several items) suggestions.
func peakSuggestions(all []domain.ScheduledItem, prefs domain.AttentionPreferences, day time.Time, targeted map[string]bool) []Suggestion {
	peak := AnalyzePeakHours(all, prefs, day)
	if peak == nil || len(peak.Candidates) == 0 {
		return nil
	}

	for _, c := range peak.Candidates {
		targeted[c.ItemID] = true
	}

	if len(peak.Candidates) == 1 {
		c := peak.Candidates[0]
		start := c.SuggestedStart
		return []Suggestion{{
			ID:            "reschedule-" + c.ItemID,
			Kind:          domain.SuggestReschedule,
			Impact:        impactFromScore(c.ImpactScore),
			Confidence:    rescheduleConfidence(c.ImpactScore),
			TargetItemIDs: []string{c.ItemID},
			Changes: []ProposedChange{{
				ItemID:    c.ItemID,
				NewStart:  &start,
				Reasoning: fmt.Sprintf("Start at %s, inside your peak window", clockOf(start)),
			}},
			Benefit: "Move demanding work into your peak window",
		}}
	}

	// Several misplaced high-demand items: batch them back-to-back from the
	// window start, flowing around everything else on the day.
	packer := newSlotPacker(all, candidateIDs(peak.Candidates))
	anchor := atMinute(day, peak.WindowStartMin)

	var maxImpact float64
	ids := make([]string, 0, len(peak.Candidates))
	changes := make([]ProposedChange, 0, len(peak.Candidates))
	for _, c := range peak.Candidates {
		if c.ImpactScore > maxImpact {
			maxImpact = c.ImpactScore
		}
		start := packer.place(anchor, durationOf(all, c.ItemID))
		anchor = start.Add(time.Duration(durationOf(all, c.ItemID)+packBufferMin) * time.Minute)
		startCopy := start
		ids = append(ids, c.ItemID)
		changes = append(changes, ProposedChange{
			ItemID:    c.ItemID,
			NewStart:  &startCopy,
			Reasoning: fmt.Sprintf("Batch into peak window at %s", clockOf(start)),
		})
	}

	impact := impactFromScore(maxImpact)
	if len(peak.Candidates) >= 3 && maxImpact >= 0.6 {
		impact = domain.ImpactCritical
	}

	return []Suggestion{{
		ID:            "batch-peak",
		Kind:          domain.SuggestBatch,
		Impact:        impact,
		Confidence:    rescheduleConfidence(maxImpact),
		TargetItemIDs: ids,
		Changes:       changes,
		Benefit:       "Batch demanding work into your peak window",
	}}
}

// consolidationSuggestions proposes one consolidate per scattered category,
// repacking its members back-to-back at the category's preferred slot.
func consolidationSuggestions(all []domain.ScheduledItem, prefs domain.AttentionPreferences, day time.Time) []Suggestion {
	var out []Suggestion
	for _, sc := range AnalyzeScattering(all, day) {
		if !sc.Scattered {
			continue
		}

		exclude := make(map[string]bool, len(sc.ItemIDs))
		for _, id := range sc.ItemIDs {
			exclude[id] = true
		}
		packer := newSlotPacker(all, exclude)

		anchor := preferredSlot(all, prefs, day, sc)
		changes := make([]ProposedChange, 0, len(sc.ItemIDs))
		for _, id := range sc.ItemIDs {
			dur := durationOf(all, id)
			start := packer.place(anchor, dur)
			anchor = start.Add(time.Duration(dur+packBufferMin) * time.Minute)
			startCopy := start
			changes = append(changes, ProposedChange{
				ItemID:    id,
				NewStart:  &startCopy,
				Reasoning: fmt.Sprintf("Group %s work into one block at %s", sc.Category, clockOf(start)),
			})
		}

		out = append(out, Suggestion{
			ID:            "consolidate-" + string(sc.Category),
			Kind:          domain.SuggestConsolidate,
			Impact:        impactFromSeverity(sc.Severity),
			Confidence:    consolidateConfidence(sc.Severity),
			TargetItemIDs: sc.ItemIDs,
			Changes:       changes,
			Benefit:       fmt.Sprintf("Recover an estimated %d min of re-engagement time", sc.SavedMinEst),
		})
	}
	return out
}

// energySuggestions flags high-demand items scheduled outside the coarse
// productive-hours band, independent of the explicit peak window. Items
// already targeted by a peak suggestion are skipped to avoid duplicates.
func energySuggestions(all []domain.ScheduledItem, day time.Time, targeted map[string]bool) []Suggestion {
	var out []Suggestion
	packer := newSlotPacker(all, nil)
	for _, it := range categorized(all) {
		if !IsHighDemand(it.Category) || targeted[it.ID] {
			continue
		}
		start := minuteOfDay(it.StartTime, day)
		if start >= productiveStartMin && start < productiveEndMin {
			continue
		}

		packer.exclude(it.ID)
		slot := packer.place(atMinute(day, productiveStartMin), it.DurationMin)
		slotCopy := slot
		out = append(out, Suggestion{
			ID:            "align-" + it.ID,
			Kind:          domain.SuggestAlignEnergy,
			Impact:        domain.ImpactMedium,
			Confidence:    0.5,
			TargetItemIDs: []string{it.ID},
			Changes: []ProposedChange{{
				ItemID:    it.ID,
				NewStart:  &slotCopy,
				Reasoning: fmt.Sprintf("Move %s work into productive hours at %s", it.Category, clockOf(slot)),
			}},
			Benefit: "Align demanding work with your daytime energy",
		})
	}
	return out
}

// preferredSlot picks the anchor for consolidating a category: the peak
// window start for high-demand categories when a window exists, otherwise
// the earliest existing member's time.
func preferredSlot(all []domain.ScheduledItem, prefs domain.AttentionPreferences, day time.Time, sc ScatterResult) time.Time {
	if IsHighDemand(sc.Category) {
		if ps, _, ok := prefs.PeakWindow(); ok {
			return atMinute(day, ps)
		}
	}
	for _, it := range all {
		if it.ID == sc.ItemIDs[0] {
			return it.StartTime
		}
	}
	return atMinute(day, productiveStartMin)
}

func impactFromScore(score float64) domain.Impact {
	switch {
	case score >= 0.6:
		return domain.ImpactHigh
	case score >= 0.35:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

func impactFromSeverity(sev domain.Severity) domain.Impact {
	switch sev {
	case domain.SeverityHigh:
		return domain.ImpactHigh
	case domain.SeverityMedium:
		return domain.ImpactMedium
	default:
		return domain.ImpactLow
	}
}

func rescheduleConfidence(impactScore float64) float64 {
	conf := 0.5 + impactScore/2
	if conf > 0.95 {
		conf = 0.95
	}
	return conf
}

func consolidateConfidence(sev domain.Severity) float64 {
	switch sev {
	case domain.SeverityHigh:
		return 0.85
	case domain.SeverityMedium:
		return 0.7
	default:
		return 0.55
	}
}

func candidateIDs(cands []RescheduleCandidate) map[string]bool {
	ids := make(map[string]bool, len(cands))
	for _, c := range cands {
		ids[c.ItemID] = true
	}
	return ids
}

func durationOf(items []domain.ScheduledItem, id string) int {
	for _, it := range items {
		if it.ID == id {
			if it.DurationMin < 0 {
				return 0
			}
			return it.DurationMin
		}
	}
	return 0
}

func clockOf(t time.Time) string {
	return t.Format("15:04")
}
