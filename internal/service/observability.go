package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent records one service operation: which use case ran, the
// calendar day it analyzed or imported, how long it took, and whether it
// succeeded.
type UseCaseEvent struct {
	Name      string
	Day       string // YYYY-MM-DD, blank when the use case is not day-scoped
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	Extra     map[string]any
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes use-case events to the provided writer as
// slog text lines, errors at error level.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]slog.Attr, 0, 6+len(event.Extra))
	attrs = append(attrs,
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	)
	if event.Day != "" {
		attrs = append(attrs, slog.String("day", event.Day))
	}
	for k, v := range event.Extra {
		attrs = append(attrs, slog.Any(k, v))
	}

	level := slog.LevelInfo
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		level = slog.LevelError
	}
	o.logger.LogAttrs(ctx, level, "use_case", attrs...)
}

// useCaseObserverOrNoop picks the first non-nil observer from a variadic
// constructor argument, so callers can omit observability entirely.
func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
