package main

import (
	"os"

	"fitbuddy/internal/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8080"

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "fitbuddy",
		Short:         "fitbuddy estimates calorie needs and browses the food catalogue",
		Long:          "fitbuddy computes BMR and goal calories from body metrics, queries the food catalogue API, and shows where you are.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "Log level (debug, info, warn, error)")

	loggerFor := func(c *cobra.Command) zerolog.Logger {
		return config.NewLoggerTo(config.LoggerConfig{Level: logLevel, Format: "console"}, c.ErrOrStderr())
	}

	cmd.AddCommand(newBMRCmd())
	cmd.AddCommand(newFoodsCmd(loggerFor))
	cmd.AddCommand(newLocateCmd(loggerFor))

	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
