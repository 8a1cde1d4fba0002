package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

type ItemRepo interface {
	Create(ctx context.Context, item *domain.ScheduledItem) error
	GetByID(ctx context.Context, id string) (*domain.ScheduledItem, error)
	ListByDay(ctx context.Context, day time.Time) ([]*domain.ScheduledItem, error)
	Update(ctx context.Context, item *domain.ScheduledItem) error
	Delete(ctx context.Context, id string) error
}

type PreferenceRepo interface {
	Get(ctx context.Context) (*domain.AttentionPreferences, error)
	Save(ctx context.Context, prefs *domain.AttentionPreferences) error
}
