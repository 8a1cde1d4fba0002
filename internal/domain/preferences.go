package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSwitchLimit is the daily context-switch budget applied when the
// user never configured one.
const DefaultSwitchLimit = 3

// AttentionPreferences captures the user's attention configuration.
// Every field is optional: an analyzer that finds its piece missing
// degrades to an unbounded or disabled result, never an error.
type AttentionPreferences struct {
	Role RoleMode

	// Budgets maps categories to a daily limit in minutes. A missing
	// category means unbounded.
	Budgets map[AttentionCategory]int

	// SwitchLimit is the daily context-switch budget. Nil falls back to
	// DefaultSwitchLimit.
	SwitchLimit *int

	// PeakStart/PeakEnd are "HH:MM" times of day. Either being empty or
	// unparsable disables peak-hours analysis.
	PeakStart string
	PeakEnd   string
}

// BudgetFor returns the configured daily limit for a category. Negative
// limits are clamped to zero rather than rejected, so a malformed
// preference degrades to "always violating" instead of failing analysis.
func (p AttentionPreferences) BudgetFor(cat AttentionCategory) (limitMin int, ok bool) {
	limit, ok := p.Budgets[cat]
	if !ok {
		return 0, false
	}
	if limit < 0 {
		limit = 0
	}
	return limit, true
}

// SwitchBudget returns the daily context-switch limit, defaulting when unset.
func (p AttentionPreferences) SwitchBudget() int {
	if p.SwitchLimit == nil {
		return DefaultSwitchLimit
	}
	if *p.SwitchLimit < 0 {
		return 0
	}
	return *p.SwitchLimit
}

// PeakWindow parses the peak-hours window into minute-of-day offsets
// [start, end). ok is false when the window is unset, unparsable, or empty.
func (p AttentionPreferences) PeakWindow() (startMin, endMin int, ok bool) {
	if p.PeakStart == "" || p.PeakEnd == "" {
		return 0, 0, false
	}
	start, err := ParseClock(p.PeakStart)
	if err != nil {
		return 0, 0, false
	}
	end, err := ParseClock(p.PeakEnd)
	if err != nil {
		return 0, 0, false
	}
	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}

// ParseClock parses an "HH:MM" time of day into a minute offset from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return hour*60 + minute, nil
}

// FormatClock renders a minute-of-day offset as "HH:MM".
func FormatClock(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}
