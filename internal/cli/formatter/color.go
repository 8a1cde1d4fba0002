package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// HealthColor returns the style matching a health status.
func HealthColor(status domain.HealthStatus) lipgloss.Style {
	switch status {
	case domain.HealthCritical:
		return StyleRed
	case domain.HealthWarning:
		return StyleYellow
	case domain.HealthHealthy:
		return StyleGreen
	default:
		return StyleDim
	}
}

// HealthIndicator returns a colored status string such as "● HEALTHY".
func HealthIndicator(status domain.HealthStatus) string {
	label := strings.ToUpper(string(status))
	if label == "" {
		label = "UNKNOWN"
	}
	return HealthColor(status).Render("● " + label)
}

// SeverityColor returns the style matching a severity.
func SeverityColor(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeverityHigh:
		return StyleRed
	case domain.SeverityMedium:
		return StyleYellow
	default:
		return StyleDim
	}
}

// ImpactBadge returns a colored impact label such as "[HIGH]".
func ImpactBadge(impact domain.Impact) string {
	label := "[" + strings.ToUpper(string(impact)) + "]"
	switch impact {
	case domain.ImpactCritical:
		return StyleRed.Bold(true).Render(label)
	case domain.ImpactHigh:
		return StyleRed.Render(label)
	case domain.ImpactMedium:
		return StyleYellow.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// CategoryColor returns the style used for an attention category.
func CategoryColor(cat domain.AttentionCategory) lipgloss.Style {
	switch cat {
	case domain.CategoryCreate:
		return StyleBlue
	case domain.CategoryDecide:
		return StylePurple
	case domain.CategoryConnect:
		return StyleYellow
	case domain.CategoryReview:
		return StyleAqua
	case domain.CategoryRecover:
		return StyleGreen
	default:
		return StyleDim
	}
}

// CategoryLabel renders a category name in its color, or a dim placeholder
// for uncategorized items.
func CategoryLabel(cat domain.AttentionCategory) string {
	if cat == "" {
		return StyleDim.Render("(none)")
	}
	return CategoryColor(cat).Render(string(cat))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
