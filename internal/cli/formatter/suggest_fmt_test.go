package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/cadence/internal/attention"
	"github.com/alexanderramin/cadence/internal/domain"
)

func TestFormatSuggestions_Empty(t *testing.T) {
	assert.Contains(t, FormatSuggestions(nil), "No optimizations found")
}

func TestFormatSuggestions_RendersRankedList(t *testing.T) {
	out := FormatSuggestions([]attention.Suggestion{
		{
			ID:         "batch-peak",
			Kind:       domain.SuggestBatch,
			Impact:     domain.ImpactCritical,
			Confidence: 0.85,
			Changes: []attention.ProposedChange{
				{ItemID: "a", Reasoning: "Move 'Write chapter' to 09:00"},
				{ItemID: "b", Reasoning: "Move 'Roadmap call' to 10:10"},
			},
			Benefit: "2 high-demand blocks inside peak hours",
		},
		{
			ID:         "consolidate-connect",
			Kind:       domain.SuggestConsolidate,
			Impact:     domain.ImpactMedium,
			Confidence: 0.7,
			Benefit:    "Save ~41m of refocus time",
		},
	})

	assert.Contains(t, out, "Suggestions (2)")
	assert.Contains(t, out, "[CRITICAL]")
	assert.Contains(t, out, "Batch high-demand work in peak hours")
	assert.Contains(t, out, "confidence 85%")
	assert.Contains(t, out, "Move 'Write chapter' to 09:00")
	assert.Contains(t, out, "Consolidate scattered work")
	assert.Contains(t, out, "Save ~41m of refocus time")
}

func TestFormatScore(t *testing.T) {
	eff := 50
	out := FormatScore(attention.HealthScore{
		Score:                72,
		Status:               domain.HealthWarning,
		OverBudgetCategories: 1,
		SwitchCostScore:      40,
		PeakEffectiveness:    &eff,
	})
	assert.Contains(t, out, "72/100")
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "50%")

	noPeak := FormatScore(attention.HealthScore{Score: 100, Status: domain.HealthHealthy})
	assert.Contains(t, noPeak, "no window set")
}
