package testutil

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/google/uuid"
)

// ItemOption mutates a fixture ScheduledItem.
type ItemOption func(*domain.ScheduledItem)

func WithItemID(id string) ItemOption {
	return func(i *domain.ScheduledItem) {
		i.ID = id
	}
}

func WithDuration(minutes int) ItemOption {
	return func(i *domain.ScheduledItem) {
		i.DurationMin = minutes
	}
}

func WithStatus(s domain.ItemStatus) ItemOption {
	return func(i *domain.ScheduledItem) {
		i.Status = s
	}
}

func WithCategory(c domain.AttentionCategory) ItemOption {
	return func(i *domain.ScheduledItem) {
		i.Category = c
	}
}

// NewTestItem builds a ScheduledItem starting at the given instant with
// sensible defaults: 30 minutes, create category, active status.
func NewTestItem(title string, start time.Time, opts ...ItemOption) *domain.ScheduledItem {
	now := time.Now().UTC()
	item := &domain.ScheduledItem{
		ID:          uuid.New().String(),
		Title:       title,
		StartTime:   start,
		DurationMin: 30,
		Category:    domain.CategoryCreate,
		Status:      domain.ItemActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(item)
	}
	return item
}

// PrefsOption mutates fixture AttentionPreferences.
type PrefsOption func(*domain.AttentionPreferences)

func WithRole(r domain.RoleMode) PrefsOption {
	return func(p *domain.AttentionPreferences) {
		p.Role = r
	}
}

func WithBudget(cat domain.AttentionCategory, limitMin int) PrefsOption {
	return func(p *domain.AttentionPreferences) {
		p.Budgets[cat] = limitMin
	}
}

func WithSwitchLimit(limit int) PrefsOption {
	return func(p *domain.AttentionPreferences) {
		p.SwitchLimit = &limit
	}
}

func WithPeakWindow(start, end string) PrefsOption {
	return func(p *domain.AttentionPreferences) {
		p.PeakStart = start
		p.PeakEnd = end
	}
}

// NewTestPrefs builds AttentionPreferences with maker role and no budgets.
func NewTestPrefs(opts ...PrefsOption) *domain.AttentionPreferences {
	prefs := &domain.AttentionPreferences{
		Role:    domain.RoleMaker,
		Budgets: make(map[domain.AttentionCategory]int),
	}
	for _, opt := range opts {
		opt(prefs)
	}
	return prefs
}
