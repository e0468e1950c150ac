package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/dinofacts/internal/config"
	"github.com/dbsmedya/dinofacts/internal/database"
	"github.com/dbsmedya/dinofacts/internal/dinosaur"
	"github.com/dbsmedya/dinofacts/internal/logger"
	"github.com/dbsmedya/dinofacts/internal/render"
	"github.com/dbsmedya/dinofacts/internal/source"
)

// app bundles what every query command needs.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	printer *render.Printer
}

// newApp loads configuration, applies CLI overrides and builds the logger
// and printer for cmd.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.LoadOrDefault(GetConfigFile(), configRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.DataPath, overrides.NoColor)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &app{
		cfg:     cfg,
		log:     log.WithCommand(cmd.Name()),
		printer: render.New(cmd.OutOrStdout(), cfg.Output.Color),
	}, nil
}

// records loads the dinosaur records from the configured source.
// SIGINT/SIGTERM cancel a load in progress.
func (a *app) records(parent context.Context) ([]dinosaur.Record, error) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := database.SetupSignalHandler(parent, func(sig os.Signal) {
		a.log.Warnw("interrupted while loading records", "signal", sig.String())
	})
	defer stop()

	loader, err := source.FromConfig(a.cfg, a.log)
	if err != nil {
		return nil, err
	}

	records, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	a.log.Debugw("records loaded", "source", a.cfg.Data.Source, "count", len(records))
	return records, nil
}
