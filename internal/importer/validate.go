package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ValidateSnapshot checks a day snapshot for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSnapshot(snapshot *DaySnapshot) []error {
	var errs []error

	if snapshot.Day == "" {
		errs = append(errs, fmt.Errorf("day is required"))
	} else if _, err := time.Parse("2006-01-02", snapshot.Day); err != nil {
		errs = append(errs, fmt.Errorf("day: invalid date format %q (expected YYYY-MM-DD)", snapshot.Day))
	}

	for i, item := range snapshot.Items {
		errs = append(errs, validateItem(i, item)...)
	}

	if snapshot.Preferences != nil {
		errs = append(errs, validatePreferences(snapshot.Preferences)...)
	}

	return errs
}

func validateItem(idx int, item ItemImport) []error {
	var errs []error

	if item.Title == "" {
		errs = append(errs, fmt.Errorf("items[%d].title is required", idx))
	}
	if item.Start == "" {
		errs = append(errs, fmt.Errorf("items[%d].start is required", idx))
	} else if _, err := domain.ParseClock(item.Start); err != nil {
		errs = append(errs, fmt.Errorf("items[%d].start: %v", idx, err))
	}
	if item.DurationMin <= 0 {
		errs = append(errs, fmt.Errorf("items[%d].duration_min must be positive, got %d", idx, item.DurationMin))
	}
	if item.Category != "" && !domain.ValidCategories[item.Category] {
		errs = append(errs, fmt.Errorf("items[%d].category: unknown category %q", idx, item.Category))
	}
	if item.Status != "" && !domain.ValidItemStatuses[item.Status] {
		errs = append(errs, fmt.Errorf("items[%d].status: unknown status %q", idx, item.Status))
	}

	return errs
}

func validatePreferences(p *PreferencesImport) []error {
	var errs []error

	if p.Role != "" && !domain.ValidRoles[p.Role] {
		errs = append(errs, fmt.Errorf("preferences.role: unknown role %q", p.Role))
	}
	for cat := range p.Budgets {
		if !domain.ValidCategories[cat] {
			errs = append(errs, fmt.Errorf("preferences.budgets: unknown category %q", cat))
		}
	}
	if p.PeakStart != "" {
		if _, err := domain.ParseClock(p.PeakStart); err != nil {
			errs = append(errs, fmt.Errorf("preferences.peak_start: %v", err))
		}
	}
	if p.PeakEnd != "" {
		if _, err := domain.ParseClock(p.PeakEnd); err != nil {
			errs = append(errs, fmt.Errorf("preferences.peak_end: %v", err))
		}
	}

	return errs
}
