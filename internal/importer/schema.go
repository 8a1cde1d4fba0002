package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// DaySnapshot is the top-level JSON structure for a day import: a calendar
// day, its scheduled items, and optionally the attention preferences to
// apply alongside them.
type DaySnapshot struct {
	Day         string             `json:"day"` // YYYY-MM-DD
	Items       []ItemImport       `json:"items"`
	Preferences *PreferencesImport `json:"preferences,omitempty"`
}

// ItemImport defines one scheduled item in the import file. Start is an
// "HH:MM" clock time on the snapshot's day.
type ItemImport struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	DurationMin int    `json:"duration_min"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status,omitempty"`
}

// PreferencesImport defines the attention preference fields in the import file.
type PreferencesImport struct {
	Role        string         `json:"role,omitempty"`
	Budgets     map[string]int `json:"budgets,omitempty"`
	SwitchLimit *int           `json:"switch_limit,omitempty"`
	PeakStart   string         `json:"peak_start,omitempty"`
	PeakEnd     string         `json:"peak_end,omitempty"`
}

// LoadSnapshot reads and parses a day snapshot file.
func LoadSnapshot(path string) (*DaySnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}
	var snapshot DaySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot file: %w", err)
	}
	return &snapshot, nil
}
