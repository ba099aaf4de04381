package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/pulse/internal/logging"
	"github.com/cognicore/pulse/pkg/pulse"
	"github.com/cognicore/pulse/pkg/pulse/config"
	"github.com/cognicore/pulse/pkg/pulse/report"
)

var (
	configPath string
	formatFlag string
	csvPath    string
	logLevel   string
)

// app is the state shared by subcommands, set up before each command runs.
var app struct {
	cfg     *config.Config
	logger  *zap.Logger
	engine  *pulse.Engine
	comps   *config.Components
	reports *report.Builder
}

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "pulse - themes, sentiment and next actions from raw feedback",
	Long: `pulse reads customer feedback, pasted as text or stored in a CSV, TSV, Excel,
JSON, HTML or SQLite file, and reports the recurring themes, a positive/negative
tally and a short list of suggested next actions.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (env vars override it)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", string(FormatHuman), "Output format: human, json or yaml")
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "Also write the themes to this CSV file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
}

func setup(cmd *cobra.Command, args []string) error {
	if _, err := parseFormat(formatFlag); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	engine, comps, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.logger = logger
	app.engine = engine
	app.comps = comps
	app.reports = report.New()
	return nil
}
