package domain

import "time"

// ScheduledItem is a single block of scheduled work on a calendar day.
// Items are owned by the scheduling shell; the analysis engine only ever
// reads immutable snapshots of them.
type ScheduledItem struct {
	ID          string
	Title       string
	StartTime   time.Time
	DurationMin int

	// Category is empty for items the user never classified. Uncategorized
	// items are invisible to category-specific analysis but still occupy
	// time on the day.
	Category AttentionCategory

	Status ItemStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCategory reports whether the item carries an attention category.
func (s ScheduledItem) HasCategory() bool {
	return s.Category != ""
}

// EndTime returns the instant the item's scheduled block ends.
func (s ScheduledItem) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.DurationMin) * time.Minute)
}
