package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/google/uuid"
)

// ConvertedDay holds the domain objects produced from a snapshot.
type ConvertedDay struct {
	Day         time.Time
	Items       []*domain.ScheduledItem
	Preferences *domain.AttentionPreferences
}

// Convert transforms a validated DaySnapshot into domain objects ready for
// persistence. Call ValidateSnapshot first; Convert assumes the snapshot is
// valid.
func Convert(snapshot *DaySnapshot) (*ConvertedDay, error) {
	now := time.Now().UTC()

	day, err := time.Parse("2006-01-02", snapshot.Day)
	if err != nil {
		return nil, fmt.Errorf("parsing day: %w", err)
	}

	items := make([]*domain.ScheduledItem, 0, len(snapshot.Items))
	for i, entry := range snapshot.Items {
		startMin, err := domain.ParseClock(entry.Start)
		if err != nil {
			return nil, fmt.Errorf("items[%d].start: %w", i, err)
		}

		id := entry.ID
		if id == "" {
			id = uuid.New().String()
		}
		status := domain.ItemStatus(entry.Status)
		if entry.Status == "" {
			status = domain.ItemActive
		}

		items = append(items, &domain.ScheduledItem{
			ID:          id,
			Title:       entry.Title,
			StartTime:   day.Add(time.Duration(startMin) * time.Minute),
			DurationMin: entry.DurationMin,
			Category:    domain.AttentionCategory(entry.Category),
			Status:      status,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	converted := &ConvertedDay{Day: day, Items: items}
	if snapshot.Preferences != nil {
		converted.Preferences = convertPreferences(snapshot.Preferences)
	}
	return converted, nil
}

func convertPreferences(p *PreferencesImport) *domain.AttentionPreferences {
	prefs := &domain.AttentionPreferences{
		Role:      domain.RoleMode(domain.CoalesceStr(p.Role, string(domain.RoleMaker))),
		Budgets:   make(map[domain.AttentionCategory]int, len(p.Budgets)),
		PeakStart: p.PeakStart,
		PeakEnd:   p.PeakEnd,
	}
	for cat, limit := range p.Budgets {
		prefs.Budgets[domain.AttentionCategory(cat)] = limit
	}
	if p.SwitchLimit != nil {
		limit := *p.SwitchLimit
		prefs.SwitchLimit = &limit
	}
	return prefs
}
