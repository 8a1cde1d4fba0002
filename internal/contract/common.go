package contract

import (
	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/attention"
)

// The contract package re-exports the stable application surface so that
// outer layers (CLI, formatters) do not reach into internals directly.

type ReportRequest = app.ReportRequest

func NewReportRequest() ReportRequest { return app.NewReportRequest() }

type ReportResponse = app.ReportResponse

type NewItemInput = app.NewItemInput

type ImportResult = app.ImportResult

type ReportError = app.ReportError

type ItemError = app.ItemError

const (
	ReportErrInvalidDay = app.ReportErrInvalidDay
	ReportErrStorage    = app.ReportErrStorage
	ItemErrNotFound     = app.ItemErrNotFound
	ItemErrValidation   = app.ItemErrValidation
)

type BudgetStatus = attention.BudgetStatus

type SwitchAnalysis = attention.SwitchAnalysis

type SwitchPoint = attention.SwitchPoint

type PeakAnalysis = attention.PeakAnalysis

type ScatterResult = attention.ScatterResult

type Suggestion = attention.Suggestion

type ProposedChange = attention.ProposedChange

type HealthScore = attention.HealthScore
