package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/forgo/volunteer/internal/config"
	"github.com/forgo/volunteer/internal/metrics"
	"github.com/forgo/volunteer/internal/service"
)

// app carries state shared by subcommands once the root command has loaded
// configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.ApplicationMetrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "volunteer",
		Short:         "Match volunteers with opportunities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a TOML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: json or text")

	cmd.AddCommand(
		newDemoCmd(a),
		newSeedCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(a.logger)
	return nil
}

// services wires a fresh set of services according to the configuration
func (a *app) services() (*service.Services, error) {
	strategy, err := service.StrategyByName(a.cfg.Matching.Strategy)
	if err != nil {
		return nil, err
	}

	observers := []service.ApplicationObserver{service.NewLoggingObserver(a.logger)}
	if a.cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		a.metrics = metrics.NewApplicationMetrics(a.registry)
		observers = append(observers, a.metrics)
	}

	return service.NewServices(service.ServicesConfig{
		Strategy:  strategy,
		Observers: observers,
		Logger:    a.logger,
	}), nil
}
