package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/attention"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/repository"
)

type reportService struct {
	items    repository.ItemRepo
	prefs    repository.PreferenceRepo
	observer UseCaseObserver
}

func NewReportService(
	items repository.ItemRepo,
	prefs repository.PreferenceRepo,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		items:    items,
		prefs:    prefs,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Report runs every analyzer over the requested day. The analysis is
// recomputed from the stored schedule on each call; results are never
// cached, so an updated item is reflected immediately.
func (s *reportService) Report(ctx context.Context, req app.ReportRequest) (resp *app.ReportResponse, err error) {
	startedAt := time.Now().UTC()
	day := startedAt
	if req.Day != nil {
		day = *req.Day
	}

	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "attention-report",
			Day:       day.Format("2006-01-02"),
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	stored, err := s.items.ListByDay(ctx, day)
	if err != nil {
		return nil, &app.ReportError{Code: app.ReportErrStorage, Message: fmt.Sprintf("loading items: %v", err)}
	}
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		return nil, &app.ReportError{Code: app.ReportErrStorage, Message: fmt.Sprintf("loading preferences: %v", err)}
	}

	items := make([]domain.ScheduledItem, 0, len(stored))
	for _, it := range stored {
		items = append(items, *it)
	}

	return &app.ReportResponse{
		Day:         day,
		GeneratedAt: startedAt,
		Items:       items,
		Preferences: *prefs,
		Budgets:     attention.AnalyzeBudgets(items, *prefs, day),
		Switches:    attention.AnalyzeSwitches(items, *prefs, day),
		Peak:        attention.AnalyzePeakHours(items, *prefs, day),
		Scattering:  attention.AnalyzeScattering(items, day),
		Suggestions: attention.GenerateSuggestions(items, *prefs, day),
		Health:      attention.ScoreDay(items, *prefs, day),
	}, nil
}
