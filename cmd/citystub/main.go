package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cityboard/internal/logging"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		listen     string
		fixture    string
		failStatus int
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:          "citystub",
		Short:        "Serve a fixture cities listing for local development",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Component(logging.New(logging.Config{Level: logLevel}), "citystub")

			st := newMemoryStore()
			if fixture != "" {
				if err := st.loadFile(fixture); err != nil {
					return err
				}
			}
			st.failStatus = failStatus

			srv := &http.Server{
				Addr:              listen,
				Handler:           withAccessLog(logger, newMux(st)),
				ReadHeaderTimeout: 10 * time.Second,
			}
			logger.Info().Str("addr", listen).Int("cities", len(st.snapshot().Cities)).Msg("citystub listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":5000", "listen address")
	cmd.Flags().StringVar(&fixture, "fixture", "", "YAML or JSON file with a cities listing")
	cmd.Flags().IntVar(&failStatus, "fail-status", 0, "answer every listing request with this HTTP status")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	return cmd
}
