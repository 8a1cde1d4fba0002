package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(application *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a day snapshot from JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := application.Imports.ImportDay(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d items for %s", result.ItemCount, result.Day.Format("2006-01-02"))
			if result.SkippedDuplicate > 0 {
				fmt.Printf(" (%d duplicates skipped)", result.SkippedDuplicate)
			}
			fmt.Println()
			if result.PreferencesSet {
				fmt.Println("Preferences updated from snapshot.")
			}
			return nil
		},
	}
}
