package app

import (
	"time"

	"github.com/alexanderramin/cadence/internal/attention"
	"github.com/alexanderramin/cadence/internal/domain"
)

// ReportRequest asks for a full attention analysis of one calendar day.
type ReportRequest struct {
	// Day is the reference date. Nil means today.
	Day *time.Time
}

// NewReportRequest returns a request with defaults.
func NewReportRequest() ReportRequest {
	return ReportRequest{}
}

// ReportResponse bundles every analyzer's output for one day. It is
// recomputed fresh on every call; nothing in it is cached or persisted.
type ReportResponse struct {
	Day         time.Time
	GeneratedAt time.Time

	Items       []domain.ScheduledItem
	Preferences domain.AttentionPreferences

	Budgets     []attention.BudgetStatus
	Switches    attention.SwitchAnalysis
	Peak        *attention.PeakAnalysis // nil when no peak window configured
	Scattering  []attention.ScatterResult
	Suggestions []attention.Suggestion
	Health      attention.HealthScore
}

// NewItemInput carries the fields needed to schedule a new item.
type NewItemInput struct {
	Title       string
	Start       time.Time
	DurationMin int
	Category    domain.AttentionCategory
}

// ImportResult summarizes a day-snapshot import.
type ImportResult struct {
	Day              time.Time
	ItemCount        int
	PreferencesSet   bool
	SkippedDuplicate int
}
