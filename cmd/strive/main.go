package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexmarten/strive/internal/cli"
	"github.com/alexmarten/strive/internal/config"
	"github.com/alexmarten/strive/internal/db"
	"github.com/alexmarten/strive/internal/domain"
	"github.com/alexmarten/strive/internal/identity"
	"github.com/alexmarten/strive/internal/repository"
	"github.com/alexmarten/strive/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories over the shared blob store.
	blobs := repository.NewSQLiteBlobRepo(database)
	collection := repository.NewBlobCollectionRepo(blobs)
	settings := repository.NewBlobSettingsRepo(blobs)

	app := &cli.App{
		Goals:      service.NewGoalService(collection),
		Metrics:    service.NewMetricsService(collection),
		Settings:   service.NewSettingsService(settings, collection),
		ChartWidth: cfg.ChartWidth,
	}
	key, err := domain.ParseSortKey(cfg.DefaultSort)
	if err != nil {
		return fmt.Errorf("config default_sort: %w", err)
	}
	app.DefaultSort = key

	// Detect interactive terminal for forms and the dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the identity client only when the provider is configured.
	authCfg := identity.LoadConfig()
	if authCfg.Enabled {
		var observer identity.Observer = identity.NoopObserver{}
		if authCfg.LogCalls {
			observer = identity.NewLogObserver(os.Stderr)
		}
		app.Auth = identity.NewRESTClient(authCfg, settings, observer)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
