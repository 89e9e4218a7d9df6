package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobportal/internal/config"
	"jobportal/internal/listing"
	"jobportal/internal/logging"
	"jobportal/internal/posting"
	"jobportal/internal/telemetry"
	"jobportal/internal/ui"
)

// app is the state shared by every subcommand after config is resolved.
type app struct {
	cfg     config.Config
	catalog *posting.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		catalogPath string
		viewMode    string
		query       string
		logFile     string
	)

	cmd := &cobra.Command{
		Use:          "jobportal",
		Short:        "Browse open roles in the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("catalog") {
				cfg.Catalog.Path = catalogPath
			}
			if flags.Changed("view") {
				cfg.UI.ViewMode = viewMode
			}
			if flags.Changed("query") {
				cfg.UI.Query = query
			}
			if flags.Changed("log-file") {
				cfg.Log.File = logFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg

			a.catalog, err = loadCatalog(cfg.Catalog.Path)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "TOML file with [[posting]] entries (default: built-in roles)")
	cmd.Flags().StringVar(&viewMode, "view", "list", "initial layout: list or grid")
	cmd.Flags().StringVar(&query, "query", "", "initial search text")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")

	cmd.AddCommand(newSearchCmd(a), newShowCmd(a))
	return cmd
}

func loadCatalog(path string) (*posting.Catalog, error) {
	if path == "" {
		return posting.DefaultCatalog(), nil
	}
	c, err := posting.LoadCatalog(path)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	return c, nil
}

func (a *app) runTUI(ctx context.Context) error {
	logger, err := logging.New(a.cfg.Log.File, a.cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tp, err := telemetry.Setup(ctx, a.cfg.Telemetry.Endpoint, a.cfg.Telemetry.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	ctrl := listing.New(a.catalog)
	ctrl.SetSearchQuery(a.cfg.UI.Query)
	ctrl.SetViewMode(a.cfg.ViewMode())
	logger.Info("start",
		zap.String("session", ctrl.SessionID()),
		zap.Int("postings", a.catalog.Len()),
		zap.Bool("tracing", tp.Enabled()),
	)

	model := ui.NewAppModel(ctrl, ui.WithLogger(logger), ui.WithTelemetry(tp)).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run program")
	}
	return nil
}
