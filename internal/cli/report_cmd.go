package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
)

func newReportCmd(application *App) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Full attention analysis for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := runReport(application, day)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatReport(formatter.ReportView{
				Day:        resp.Day,
				Items:      resp.Items,
				Budgets:    resp.Budgets,
				Switches:   resp.Switches,
				Peak:       resp.Peak,
				Scattering: resp.Scattering,
			}))
			fmt.Println()
			fmt.Println(formatter.FormatScore(resp.Health))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day (YYYY-MM-DD, default today)")
	return cmd
}

// runReport resolves the --day flag and fetches a report.
func runReport(application *App, day string) (*contract.ReportResponse, error) {
	dayTime, err := parseDayFlag(day)
	if err != nil {
		return nil, err
	}
	req := contract.NewReportRequest()
	req.Day = &dayTime
	return application.Reports.Report(context.Background(), req)
}

func newSuggestCmd(application *App) *cobra.Command {
	var day string
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ranked optimization suggestions for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := runReport(application, day)
			if err != nil {
				return err
			}

			suggestions := resp.Suggestions
			if limit > 0 && len(suggestions) > limit {
				suggestions = suggestions[:limit]
			}
			fmt.Println(formatter.FormatSuggestions(suggestions))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many suggestions (0 for all)")
	return cmd
}

func newScoreCmd(application *App) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Attention health score for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := runReport(application, day)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatScore(resp.Health))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day (YYYY-MM-DD, default today)")
	return cmd
}
