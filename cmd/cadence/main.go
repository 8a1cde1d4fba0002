package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/cadence/internal/cli"
	"github.com/alexanderramin/cadence/internal/config"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	if cfg.NoColor {
		// lipgloss and termenv honor the NO_COLOR convention.
		os.Setenv("NO_COLOR", "1")
	}

	// DB path precedence: env var, config file, default ~/.cadence/cadence.db
	dbPath := os.Getenv("CADENCE_DB")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".cadence", "cadence.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	itemRepo := repository.NewSQLiteItemRepo(database)
	prefRepo := repository.NewSQLitePreferenceRepo(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("CADENCE_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Items:       service.NewItemService(itemRepo),
		Preferences: service.NewPreferenceService(prefRepo),
		Reports:     service.NewReportService(itemRepo, prefRepo, observer),
		Imports:     service.NewImportService(itemRepo, prefRepo, observer),

		DashboardRefresh: cfg.RefreshInterval(),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
