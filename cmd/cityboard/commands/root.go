package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cityboard/internal/app"
	"cityboard/internal/config"
	"cityboard/internal/logging"
)

var (
	configPath string
	endpoint   string
	localeTag  string
	logLevel   string
	logFormat  string

	appCtx *app.Wire
	logger zerolog.Logger
)

// errLoadFailed makes the process exit non-zero when a cycle ends in error.
// The diagnostic line has already been logged by the loader.
var errLoadFailed = errors.New("loading cities failed")

// Execute builds the command tree and runs it.
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "cityboard",
		Short:        "Render city cards from the territory backend",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg)

			logger = logging.Component(logging.New(cfg.Logging()), "cityboard")
			cmd.SetContext(logger.WithContext(cmd.Context()))

			appCtx, err = app.NewWire(cfg, nil)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			logger.Debug().
				Str("command", cmd.Name()).
				Str("endpoint", cfg.Endpoint).
				Str("locale", appCtx.Labels.Tag().String()).
				Msg("command started")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&endpoint, "endpoint", "", "territory backend base URL (e.g. http://127.0.0.1:5000)")
	root.PersistentFlags().StringVar(&localeTag, "locale", "", "label language (fr, en)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(renderCmd(), showCmd(), serveCmd())
	return root
}

// applyFlags layers explicitly set flags over file and environment settings.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = endpoint
	}
	if flags.Changed("locale") {
		cfg.Locale = localeTag
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("listen") {
		cfg.Listen = listenAddr
	}
}
