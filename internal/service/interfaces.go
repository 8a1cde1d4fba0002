package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/domain"
)

type ItemService interface {
	Create(ctx context.Context, input app.NewItemInput) (*domain.ScheduledItem, error)
	GetByID(ctx context.Context, id string) (*domain.ScheduledItem, error)
	ListByDay(ctx context.Context, day time.Time) ([]*domain.ScheduledItem, error)
	SetStatus(ctx context.Context, id string, status domain.ItemStatus) error
	Delete(ctx context.Context, id string) error
}

type PreferenceService interface {
	Get(ctx context.Context) (*domain.AttentionPreferences, error)
	Save(ctx context.Context, prefs *domain.AttentionPreferences) error
}

type ReportService interface {
	Report(ctx context.Context, req app.ReportRequest) (*app.ReportResponse, error)
}

type ImportService interface {
	ImportDay(ctx context.Context, filePath string) (*app.ImportResult, error)
}
