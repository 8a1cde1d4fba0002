package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
)

func newDashboardCmd(application *App) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Live attention dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if application.IsInteractive != nil && !application.IsInteractive() {
				return fmt.Errorf("the dashboard requires a terminal; use 'cadence report'")
			}
			dayTime, err := parseDayFlag(day)
			if err != nil {
				return err
			}

			model := newDashboardModel(application, dayTime)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day (YYYY-MM-DD, default today)")
	return cmd
}

type dashboardKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

var dashboardKeys = dashboardKeyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type reportMsg struct {
	resp *contract.ReportResponse
	err  error
}

type refreshTickMsg time.Time

type dashboardModel struct {
	app     *App
	day     time.Time
	refresh time.Duration

	spin    spinner.Model
	loading bool
	resp    *contract.ReportResponse
	err     error
}

func newDashboardModel(application *App, day time.Time) dashboardModel {
	refresh := application.DashboardRefresh
	if refresh <= 0 {
		refresh = 30 * time.Second
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = formatter.StylePurple

	return dashboardModel{
		app:     application,
		day:     day,
		refresh: refresh,
		spin:    spin,
		loading: true,
	}
}

func (m dashboardModel) fetchReport() tea.Msg {
	req := contract.NewReportRequest()
	day := m.day
	req.Day = &day
	resp, err := m.app.Reports.Report(context.Background(), req)
	return reportMsg{resp: resp, err: err}
}

func (m dashboardModel) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchReport, m.scheduleRefresh())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, dashboardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, dashboardKeys.Refresh):
			m.loading = true
			return m, m.fetchReport
		}
		return m, nil

	case reportMsg:
		m.loading = false
		m.resp = msg.resp
		m.err = msg.err
		return m, nil

	case refreshTickMsg:
		m.loading = true
		return m, tea.Batch(m.fetchReport, m.scheduleRefresh())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	if m.loading && m.resp == nil {
		fmt.Fprintf(&b, "\n  %s %s\n", m.spin.View(), formatter.Dim("computing attention report..."))
		return b.String()
	}
	if m.err != nil {
		fmt.Fprintf(&b, "\n  %s\n", formatter.StyleRed.Render("Error: "+m.err.Error()))
		return b.String()
	}
	if m.resp == nil {
		return "\n"
	}

	b.WriteString(formatter.FormatReport(formatter.ReportView{
		Day:        m.resp.Day,
		Items:      m.resp.Items,
		Budgets:    m.resp.Budgets,
		Switches:   m.resp.Switches,
		Peak:       m.resp.Peak,
		Scattering: m.resp.Scattering,
	}))
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatScore(m.resp.Health))
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatSuggestions(m.resp.Suggestions))

	status := fmt.Sprintf("updated %s, refreshes every %s",
		m.resp.GeneratedAt.Local().Format("15:04:05"), m.refresh)
	if m.loading {
		status = m.spin.View() + " refreshing..."
	}
	fmt.Fprintf(&b, "\n%s\n", formatter.Dim(status+"  (r refresh, q quit)"))

	return b.String()
}
