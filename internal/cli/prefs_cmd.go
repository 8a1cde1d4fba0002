package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
)

func newPrefsCmd(application *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "View and edit attention preferences",
	}

	cmd.AddCommand(
		newPrefsShowCmd(application),
		newPrefsSetCmd(application),
		newPrefsEditCmd(application),
	)

	return cmd
}

func newPrefsShowCmd(application *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := application.Preferences.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatPrefs(prefs))
			return nil
		},
	}
}

func formatPrefs(prefs *domain.AttentionPreferences) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Role          %s\n", formatter.Bold(string(prefs.Role)))
	fmt.Fprintf(&b, "Switch limit  %d per day\n", prefs.SwitchBudget())

	if ps, pe, ok := prefs.PeakWindow(); ok {
		fmt.Fprintf(&b, "Peak window   %s–%s\n", domain.FormatClock(ps), domain.FormatClock(pe))
	} else {
		fmt.Fprintf(&b, "Peak window   %s\n", formatter.Dim("not set"))
	}

	b.WriteString("Budgets\n")
	anyBudget := false
	for _, cat := range domain.Categories() {
		if limit, ok := prefs.Budgets[cat]; ok {
			fmt.Fprintf(&b, "  %s  %s\n", formatter.CategoryLabel(cat), formatter.FormatMinutes(limit))
			anyBudget = true
		}
	}
	if !anyBudget {
		fmt.Fprintf(&b, "  %s\n", formatter.Dim("none"))
	}

	return strings.TrimRight(b.String(), "\n")
}

func newPrefsSetCmd(application *App) *cobra.Command {
	var role, peakStart, peakEnd string
	var switchLimit int
	var budgets []string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set preference fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			prefs, err := application.Preferences.Get(ctx)
			if err != nil {
				return err
			}

			if role != "" {
				prefs.Role = domain.RoleMode(role)
			}
			if cmd.Flags().Changed("switch-limit") {
				limit := switchLimit
				prefs.SwitchLimit = &limit
			}
			if cmd.Flags().Changed("peak-start") {
				prefs.PeakStart = peakStart
			}
			if cmd.Flags().Changed("peak-end") {
				prefs.PeakEnd = peakEnd
			}

			for _, entry := range budgets {
				cat, limit, err := parseBudgetFlag(entry)
				if err != nil {
					return err
				}
				if prefs.Budgets == nil {
					prefs.Budgets = make(map[domain.AttentionCategory]int)
				}
				if limit <= 0 {
					delete(prefs.Budgets, cat)
				} else {
					prefs.Budgets[cat] = limit
				}
			}

			if err := application.Preferences.Save(ctx, prefs); err != nil {
				return err
			}
			fmt.Println("Preferences saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role mode (maker, marker, multiplier)")
	cmd.Flags().IntVar(&switchLimit, "switch-limit", 0, "Daily context-switch limit")
	cmd.Flags().StringVar(&peakStart, "peak-start", "", "Peak window start (HH:MM, blank clears)")
	cmd.Flags().StringVar(&peakEnd, "peak-end", "", "Peak window end (HH:MM, blank clears)")
	cmd.Flags().StringSliceVar(&budgets, "budget", nil, "Category budget as category=minutes (0 clears), repeatable")

	return cmd
}

// parseBudgetFlag parses a "category=minutes" flag value.
func parseBudgetFlag(entry string) (domain.AttentionCategory, int, error) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("invalid budget %q: expected category=minutes", entry)
	}
	cat := strings.TrimSpace(parts[0])
	if !domain.ValidCategories[cat] {
		return "", 0, fmt.Errorf("unknown category %q", cat)
	}
	limit, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", 0, fmt.Errorf("invalid budget minutes %q", parts[1])
	}
	return domain.AttentionCategory(cat), limit, nil
}

func newPrefsEditCmd(application *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit preferences interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if application.IsInteractive != nil && !application.IsInteractive() {
				return fmt.Errorf("interactive editing requires a terminal; use 'cadence prefs set'")
			}

			ctx := context.Background()
			prefs, err := application.Preferences.Get(ctx)
			if err != nil {
				return err
			}

			if err := runPrefsForm(prefs); err != nil {
				return err
			}

			if err := application.Preferences.Save(ctx, prefs); err != nil {
				return err
			}
			fmt.Println("Preferences saved.")
			return nil
		},
	}
}
