package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/importer"
	"github.com/alexanderramin/cadence/internal/repository"
)

type importService struct {
	items    repository.ItemRepo
	prefs    repository.PreferenceRepo
	observer UseCaseObserver
}

func NewImportService(
	items repository.ItemRepo,
	prefs repository.PreferenceRepo,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		items:    items,
		prefs:    prefs,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportDay(ctx context.Context, filePath string) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		day := ""
		if result != nil {
			day = result.Day.Format("2006-01-02")
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-day",
			Day:       day,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Extra:     map[string]any{"file": filePath},
		})
	}()

	snapshot, err := importer.LoadSnapshot(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if errs := importer.ValidateSnapshot(snapshot); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted, err := importer.Convert(snapshot)
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	skipped := 0
	imported := 0
	for _, item := range converted.Items {
		if _, getErr := s.items.GetByID(ctx, item.ID); getErr == nil {
			skipped++
			continue
		} else if !errors.Is(getErr, repository.ErrNotFound) {
			return nil, fmt.Errorf("checking item %q: %w", item.ID, getErr)
		}
		if err := s.items.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("creating item %q: %w", item.Title, err)
		}
		imported++
	}

	if converted.Preferences != nil {
		if err := s.prefs.Save(ctx, converted.Preferences); err != nil {
			return nil, fmt.Errorf("saving preferences: %w", err)
		}
	}

	return &app.ImportResult{
		Day:              converted.Day,
		ItemCount:        imported,
		PreferencesSet:   converted.Preferences != nil,
		SkippedDuplicate: skipped,
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
