package attention

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// testDay is the fixed reference day used across engine tests.
var testDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

// at returns an instant on testDay at the given "HH:MM" clock time.
func at(clock string) time.Time {
	min, err := domain.ParseClock(clock)
	if err != nil {
		panic(err)
	}
	return testDay.Add(time.Duration(min) * time.Minute)
}

func mkItem(id, clock string, durMin int, cat domain.AttentionCategory) domain.ScheduledItem {
	return domain.ScheduledItem{
		ID:          id,
		Title:       id,
		StartTime:   at(clock),
		DurationMin: durMin,
		Category:    cat,
		Status:      domain.ItemActive,
	}
}

func intPtr(v int) *int { return &v }
