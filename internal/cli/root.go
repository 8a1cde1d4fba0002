package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/cadence/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Items       service.ItemService
	Preferences service.PreferenceService
	Reports     service.ReportService
	Imports     service.ImportService

	// IsInteractive reports whether stdin is a terminal; interactive
	// editors and the dashboard require it.
	IsInteractive func() bool

	// DashboardRefresh is how often the live dashboard recomputes.
	DashboardRefresh time.Duration
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cadence",
		Short: "Attention scheduling and day health analyzer",
	}

	// Accept flags case-insensitively so --Day and --day both work.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	root.AddCommand(
		newItemCmd(app),
		newPrefsCmd(app),
		newReportCmd(app),
		newSuggestCmd(app),
		newScoreCmd(app),
		newImportCmd(app),
		newDashboardCmd(app),
	)

	return root
}
