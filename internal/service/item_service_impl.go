package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
)

type itemService struct {
	items repository.ItemRepo
}

func NewItemService(items repository.ItemRepo) ItemService {
	return &itemService{items: items}
}

func (s *itemService) Create(ctx context.Context, input app.NewItemInput) (*domain.ScheduledItem, error) {
	if input.Title == "" {
		return nil, &app.ItemError{Code: app.ItemErrValidation, Message: "title is required"}
	}
	if input.DurationMin <= 0 {
		return nil, &app.ItemError{Code: app.ItemErrValidation, Message: fmt.Sprintf("duration must be positive, got %d", input.DurationMin)}
	}
	if input.Category != "" && !domain.ValidCategories[string(input.Category)] {
		return nil, &app.ItemError{Code: app.ItemErrValidation, Message: fmt.Sprintf("unknown category %q", input.Category)}
	}

	now := time.Now().UTC()
	item := &domain.ScheduledItem{
		ID:          uuid.New().String(),
		Title:       input.Title,
		StartTime:   input.Start,
		DurationMin: input.DurationMin,
		Category:    input.Category,
		Status:      domain.ItemActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetByID(ctx context.Context, id string) (*domain.ScheduledItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &app.ItemError{Code: app.ItemErrNotFound, Message: fmt.Sprintf("item %q not found", id)}
	}
	return item, err
}

func (s *itemService) ListByDay(ctx context.Context, day time.Time) ([]*domain.ScheduledItem, error) {
	return s.items.ListByDay(ctx, day)
}

func (s *itemService) SetStatus(ctx context.Context, id string, status domain.ItemStatus) error {
	if !domain.ValidItemStatuses[string(status)] {
		return &app.ItemError{Code: app.ItemErrValidation, Message: fmt.Sprintf("unknown status %q", status)}
	}
	item, err := s.items.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return &app.ItemError{Code: app.ItemErrNotFound, Message: fmt.Sprintf("item %q not found", id)}
	}
	if err != nil {
		return err
	}
	item.Status = status
	item.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, item)
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	err := s.items.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return &app.ItemError{Code: app.ItemErrNotFound, Message: fmt.Sprintf("item %q not found", id)}
	}
	return err
}
