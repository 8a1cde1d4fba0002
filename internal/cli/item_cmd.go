package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
)

// parseDayFlag parses a --day value, defaulting to today when blank.
func parseDayFlag(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: expected YYYY-MM-DD", value)
	}
	return day, nil
}

func newItemCmd(application *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage scheduled items",
	}

	cmd.AddCommand(
		newItemAddCmd(application),
		newItemListCmd(application),
		newItemDoneCmd(application),
		newItemParkCmd(application),
		newItemRemoveCmd(application),
	)

	return cmd
}

func newItemAddCmd(application *App) *cobra.Command {
	var title, day, start, category string
	var duration int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a new item",
		RunE: func(cmd *cobra.Command, args []string) error {
			dayTime, err := parseDayFlag(day)
			if err != nil {
				return err
			}
			startMin, err := domain.ParseClock(start)
			if err != nil {
				return err
			}

			item, err := application.Items.Create(context.Background(), contract.NewItemInput{
				Title:       title,
				Start:       dayTime.Add(time.Duration(startMin) * time.Minute),
				DurationMin: duration,
				Category:    domain.AttentionCategory(category),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Scheduled %q at %s for %s\n",
				item.Title, item.StartTime.Format("15:04"), formatter.FormatMinutes(item.DurationMin))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&day, "day", "", "Day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes")
	cmd.Flags().StringVar(&category, "category", "", "Attention category (create, decide, connect, review, recover)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func newItemListCmd(application *App) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's items",
		RunE: func(cmd *cobra.Command, args []string) error {
			dayTime, err := parseDayFlag(day)
			if err != nil {
				return err
			}

			items, err := application.Items.ListByDay(context.Background(), dayTime)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No items scheduled.")
				return nil
			}

			values := make([]domain.ScheduledItem, 0, len(items))
			for _, it := range items {
				values = append(values, *it)
			}
			fmt.Println(formatter.FormatSchedule(values))

			for _, it := range items {
				fmt.Println(formatter.Dim(fmt.Sprintf("%s  %s", it.StartTime.Format("15:04"), it.ID)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day (YYYY-MM-DD, default today)")
	return cmd
}

func newItemDoneCmd(application *App) *cobra.Command {
	return newItemStatusCmd(application, "done", "Mark an item completed", domain.ItemCompleted)
}

func newItemParkCmd(application *App) *cobra.Command {
	return newItemStatusCmd(application, "park", "Park an item for later", domain.ItemParked)
}

func newItemStatusCmd(application *App, use, short string, status domain.ItemStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <item-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.Items.SetStatus(context.Background(), args[0], status); err != nil {
				return err
			}
			fmt.Printf("Item %s is now %s\n", args[0], status)
			return nil
		},
	}
}

func newItemRemoveCmd(application *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.Items.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted item %s\n", args[0])
			return nil
		},
	}
}
