package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/attention"
	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatSuggestions renders ranked suggestions, highest value first.
func FormatSuggestions(suggestions []attention.Suggestion) string {
	if len(suggestions) == 0 {
		return StyleGreen.Render("No optimizations found. The day looks well arranged.")
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Suggestions (%d)", len(suggestions))))
	b.WriteString("\n")

	for i, s := range suggestions {
		b.WriteString("\n")
		b.WriteString(formatSuggestion(i+1, s))
		b.WriteString("\n")
	}
	return b.String()
}

func formatSuggestion(rank int, s attention.Suggestion) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d. %s %s %s\n",
		rank,
		ImpactBadge(s.Impact),
		Bold(suggestionTitle(s)),
		Dim(fmt.Sprintf("(confidence %.0f%%)", s.Confidence*100)),
	)

	for _, c := range s.Changes {
		fmt.Fprintf(&b, "   %s %s\n", StyleBlue.Render("→"), c.Reasoning)
	}
	if s.Benefit != "" {
		fmt.Fprintf(&b, "   %s\n", StyleGreen.Render(s.Benefit))
	}
	return strings.TrimRight(b.String(), "\n")
}

func suggestionTitle(s attention.Suggestion) string {
	switch s.Kind {
	case domain.SuggestReschedule:
		return "Move into your peak window"
	case domain.SuggestBatch:
		return "Batch high-demand work in peak hours"
	case domain.SuggestConsolidate:
		return "Consolidate scattered work"
	case domain.SuggestAlignEnergy:
		return "Align demanding work with productive hours"
	default:
		return string(s.Kind)
	}
}
