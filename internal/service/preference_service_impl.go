package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
)

type preferenceService struct {
	prefs repository.PreferenceRepo
}

func NewPreferenceService(prefs repository.PreferenceRepo) PreferenceService {
	return &preferenceService{prefs: prefs}
}

func (s *preferenceService) Get(ctx context.Context) (*domain.AttentionPreferences, error) {
	return s.prefs.Get(ctx)
}

func (s *preferenceService) Save(ctx context.Context, prefs *domain.AttentionPreferences) error {
	if prefs.Role != "" && !domain.ValidRoles[string(prefs.Role)] {
		return fmt.Errorf("unknown role %q", prefs.Role)
	}
	if prefs.Role == "" {
		prefs.Role = domain.RoleMaker
	}
	for cat := range prefs.Budgets {
		if !domain.ValidCategories[string(cat)] {
			return fmt.Errorf("unknown budget category %q", cat)
		}
	}
	if prefs.PeakStart != "" {
		if _, err := domain.ParseClock(prefs.PeakStart); err != nil {
			return fmt.Errorf("peak start: %w", err)
		}
	}
	if prefs.PeakEnd != "" {
		if _, err := domain.ParseClock(prefs.PeakEnd); err != nil {
			return fmt.Errorf("peak end: %w", err)
		}
	}
	return s.prefs.Save(ctx, prefs)
}
