package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/attention"
)

// FormatScore renders the health score box with its component breakdown.
func FormatScore(health attention.HealthScore) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n", RenderScoreBar(health.Score, 20), HealthIndicator(health.Status))

	fmt.Fprintf(&b, "Over-budget categories  %d\n", health.OverBudgetCategories)
	fmt.Fprintf(&b, "Switch cost score       %d/100\n", health.SwitchCostScore)
	if health.PeakEffectiveness != nil {
		fmt.Fprintf(&b, "Peak effectiveness      %d%%\n", *health.PeakEffectiveness)
	} else {
		fmt.Fprintf(&b, "Peak effectiveness      %s\n", Dim("no window set"))
	}

	return RenderBox("Attention Health", strings.TrimRight(b.String(), "\n"))
}
