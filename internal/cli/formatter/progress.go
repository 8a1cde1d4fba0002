package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderUsageBar renders a budget usage bar like [████░░░░] 75%.
// Usage coloring runs the opposite way to progress: low usage is green,
// approaching the limit is yellow, and at or over it is red.
func RenderUsageBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if width < 2 {
		width = 2
	}

	fillPct := pct
	if fillPct > 100 {
		fillPct = 100
	}
	filled := int(fillPct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct >= 100:
		style = StyleRed
	case pct >= 80:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %.0f%%", style.Render(bar), pct)
}

// RenderScoreBar renders a 0-100 score bar colored by health bands.
func RenderScoreBar(score int, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if width < 2 {
		width = 2
	}

	filled := score * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleRed
	switch {
	case score >= 80:
		style = StyleGreen
	case score >= 60:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %d/100", style.Render(bar), score)
}
