package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/attention"
	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatReport renders the full day report: schedule, budgets, switches,
// peak alignment, and scattering, section by section.
func FormatReport(resp ReportView) string {
	var sections []string

	sections = append(sections, Header(fmt.Sprintf("Attention Report — %s", resp.Day.Format("Mon Jan 2, 2006"))))
	sections = append(sections, FormatSchedule(resp.Items))
	sections = append(sections, FormatBudgets(resp.Budgets))
	sections = append(sections, FormatSwitches(resp.Switches))
	if resp.Peak != nil {
		sections = append(sections, FormatPeak(*resp.Peak))
	}
	if len(resp.Scattering) > 0 {
		sections = append(sections, FormatScattering(resp.Scattering))
	}

	return strings.Join(sections, "\n\n")
}

// ReportView is the slice of the report the formatter needs. Defined here
// so the formatter package does not depend on the service layer.
type ReportView struct {
	Day        time.Time
	Items      []domain.ScheduledItem
	Budgets    []attention.BudgetStatus
	Switches   attention.SwitchAnalysis
	Peak       *attention.PeakAnalysis
	Scattering []attention.ScatterResult
}

// FormatSchedule renders the day's items as a table in start order.
func FormatSchedule(items []domain.ScheduledItem) string {
	if len(items) == 0 {
		return Dim("No items scheduled.")
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.StartTime.Format("15:04"),
			FormatMinutes(it.DurationMin),
			it.Title,
			CategoryLabel(it.Category),
			string(it.Status),
		})
	}
	return RenderTable([]string{"START", "LEN", "TITLE", "CATEGORY", "STATUS"}, rows)
}

// FormatBudgets renders per-category budget usage with usage bars.
func FormatBudgets(budgets []attention.BudgetStatus) string {
	if len(budgets) == 0 {
		return Header("Budgets") + "\n" + Dim("No categorized work.")
	}

	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		limit := Dim("—")
		bar := ""
		if b.HasLimit && b.LimitMin > 0 {
			limit = FormatMinutes(b.LimitMin)
			bar = RenderUsageBar(b.UsagePct, 12)
		}
		mark := ""
		if b.OverBudget {
			mark = StyleRed.Render("OVER")
		}
		rows = append(rows, []string{
			CategoryLabel(b.Category),
			fmt.Sprintf("%d", b.ItemsCount),
			FormatMinutes(b.TotalMin),
			limit,
			bar,
			mark,
		})
	}
	return Header("Budgets") + "\n" + RenderTable([]string{"CATEGORY", "ITEMS", "USED", "LIMIT", "USAGE", ""}, rows)
}

// FormatSwitches renders the context-switch analysis.
func FormatSwitches(sw attention.SwitchAnalysis) string {
	head := Header("Context Switches")
	if len(sw.Points) == 0 {
		return head + "\n" + Dim("No context switches.")
	}

	rows := make([][]string, 0, len(sw.Points))
	for _, p := range sw.Points {
		rows = append(rows, []string{
			p.Time.Format("15:04"),
			fmt.Sprintf("%s → %s", CategoryLabel(p.From), CategoryLabel(p.To)),
			fmt.Sprintf("%d", p.Cost),
			SeverityColor(p.Severity).Render(string(p.Severity)),
		})
	}

	summary := fmt.Sprintf("%d switches (limit %d), total cost %d",
		len(sw.Points), sw.SwitchLimit, sw.TotalCost)
	if sw.OverBudget {
		summary += "  " + StyleRed.Render("OVER LIMIT")
	}

	return head + "\n" + RenderTable([]string{"TIME", "TRANSITION", "COST", "SEVERITY"}, rows) + "\n" + summary
}

// FormatPeak renders peak-window alignment.
func FormatPeak(peak attention.PeakAnalysis) string {
	head := Header(fmt.Sprintf("Peak Hours %s–%s",
		domain.FormatClock(peak.WindowStartMin), domain.FormatClock(peak.WindowEndMin)))

	lines := []string{
		fmt.Sprintf("Window utilization   %s", RenderUsageBar(float64(peak.UtilizationPct), 12)),
		fmt.Sprintf("Peak effectiveness   %s", RenderUsageBar(float64(peak.EffectivenessPct), 12)),
		fmt.Sprintf("%d inside, %d outside", peak.InsideCount, peak.OutsideCount),
	}

	for _, c := range peak.Candidates {
		lines = append(lines, fmt.Sprintf("%s %s at %s is %s from the window (suggest %s)",
			StyleYellow.Render("↻"),
			Bold(c.Title),
			c.Start.Format("15:04"),
			FormatMinutes(c.DistanceMin),
			c.SuggestedStart.Format("15:04"),
		))
	}

	return head + "\n" + strings.Join(lines, "\n")
}

// FormatScattering renders scattered-category findings.
func FormatScattering(results []attention.ScatterResult) string {
	head := Header("Scattering")

	var lines []string
	for _, r := range results {
		if !r.Scattered {
			lines = append(lines, fmt.Sprintf("%s  %s", CategoryLabel(r.Category), Dim("well grouped")))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %s scattered across %d blocks, %s idle between them (est. %s recoverable)",
			CategoryLabel(r.Category),
			SeverityColor(r.Severity).Render(string(r.Severity)),
			len(r.ItemIDs),
			FormatMinutes(r.TotalGapMin),
			FormatMinutes(r.SavedMinEst),
		))
	}
	return head + "\n" + strings.Join(lines, "\n")
}
