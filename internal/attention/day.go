package attention

import (
	"sort"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// sameDay reports whether t falls on the given calendar day, evaluated in
// the day's location.
func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dayItems returns the items scheduled on the given calendar day, sorted by
// start time with ID as the tiebreak. The engine never trusts caller order:
// silently wrong switch detection on unsorted input would be worse than the
// cost of re-sorting a day's worth of items.
func dayItems(items []domain.ScheduledItem, day time.Time) []domain.ScheduledItem {
	out := make([]domain.ScheduledItem, 0, len(items))
	for _, it := range items {
		if sameDay(it.StartTime, day) {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// categorized filters a day's items down to those carrying an attention
// category. Uncategorized items stay out of every category-specific
// computation but remain visible for generic slot packing.
func categorized(items []domain.ScheduledItem) []domain.ScheduledItem {
	out := make([]domain.ScheduledItem, 0, len(items))
	for _, it := range items {
		if it.HasCategory() {
			out = append(out, it)
		}
	}
	return out
}

// minuteOfDay returns t's offset from midnight in minutes, in day's location.
func minuteOfDay(t, day time.Time) int {
	local := t.In(day.Location())
	return local.Hour()*60 + local.Minute()
}

// atMinute returns the instant on the given day at a minute-of-day offset.
func atMinute(day time.Time, minute int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, minute/60, minute%60, 0, 0, day.Location())
}
