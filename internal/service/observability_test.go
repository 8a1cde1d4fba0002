package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/testutil"
)

func TestLogUseCaseObserver_EmitsDayScopedEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "attention-report",
		Day:      "2025-06-02",
		Duration: 12 * time.Millisecond,
		Success:  true,
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=attention-report")
	assert.Contains(t, out, "day=2025-06-02")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "level=INFO")
}

func TestLogUseCaseObserver_ErrorsAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "import-day",
		Success: false,
		Err:     errors.New("snapshot unreadable"),
		Extra:   map[string]any{"file": "day.json"},
	})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "snapshot unreadable")
	assert.Contains(t, out, "file=day.json")
}

func TestLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(nil)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}

func TestReportService_ObserverSeesDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	itemRepo := repository.NewSQLiteItemRepo(db)
	prefRepo := repository.NewSQLitePreferenceRepo(db)

	var buf bytes.Buffer
	svc := NewReportService(itemRepo, prefRepo, NewLogUseCaseObserver(&buf))

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	req := contract.NewReportRequest()
	req.Day = &day
	_, err := svc.Report(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "use_case=attention-report")
	assert.Contains(t, buf.String(), "day=2025-06-02")
}
