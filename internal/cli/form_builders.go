package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
)

// cadenceHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func cadenceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateOptionalClock accepts a blank value or a valid HH:MM time.
func validateOptionalClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := domain.ParseClock(s)
	return err
}

// validateOptionalInt accepts a blank value or a non-negative integer.
func validateOptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// runPrefsForm walks the user through every preference field and writes the
// answers back into prefs.
func runPrefsForm(prefs *domain.AttentionPreferences) error {
	role := string(prefs.Role)
	peakStart := prefs.PeakStart
	peakEnd := prefs.PeakEnd

	switchLimit := ""
	if prefs.SwitchLimit != nil {
		switchLimit = strconv.Itoa(*prefs.SwitchLimit)
	}

	budgetValues := make(map[domain.AttentionCategory]*string, len(domain.Categories()))
	budgetFields := make([]huh.Field, 0, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		value := ""
		if limit, ok := prefs.Budgets[cat]; ok {
			value = strconv.Itoa(limit)
		}
		bound := value
		budgetValues[cat] = &bound
		budgetFields = append(budgetFields, huh.NewInput().
			Title(fmt.Sprintf("Daily %s budget (minutes, blank for none)", cat)).
			Placeholder("120").
			Value(&bound).
			Validate(validateOptionalInt))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Role mode").
				Options(
					huh.NewOption("Maker (deep solo work)", string(domain.RoleMaker)),
					huh.NewOption("Marker (review and feedback)", string(domain.RoleMarker)),
					huh.NewOption("Multiplier (coordination)", string(domain.RoleMultiplier)),
				).
				Value(&role),
			huh.NewInput().
				Title("Daily switch limit (blank for default)").
				Placeholder("3").
				Value(&switchLimit).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Peak window start (HH:MM, blank for none)").
				Placeholder("09:00").
				Value(&peakStart).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Peak window end (HH:MM, blank for none)").
				Placeholder("12:00").
				Value(&peakEnd).
				Validate(validateOptionalClock),
		),
		huh.NewGroup(budgetFields...),
	).WithTheme(cadenceHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	prefs.Role = domain.RoleMode(role)
	prefs.PeakStart = strings.TrimSpace(peakStart)
	prefs.PeakEnd = strings.TrimSpace(peakEnd)

	prefs.SwitchLimit = nil
	if v := strings.TrimSpace(switchLimit); v != "" {
		n, _ := strconv.Atoi(v)
		prefs.SwitchLimit = &n
	}

	prefs.Budgets = make(map[domain.AttentionCategory]int)
	for cat, bound := range budgetValues {
		v := strings.TrimSpace(*bound)
		if v == "" {
			continue
		}
		if n, _ := strconv.Atoi(v); n > 0 {
			prefs.Budgets[cat] = n
		}
	}
	return nil
}
