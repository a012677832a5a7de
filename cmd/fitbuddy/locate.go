package main

import (
	"fmt"
	"net/http"

	"fitbuddy/internal/config"
	"fitbuddy/internal/geocode"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newLocateCmd(loggerFor func(*cobra.Command) zerolog.Logger) *cobra.Command {
	var (
		lat       float64
		lon       float64
		baseURL   string
		userAgent string
		timeout   int
	)

	defaults := config.LoadGeocoder()

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Show a place name for a coordinate pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
				return fmt.Errorf("coordinates out of range: %g, %g", lat, lon)
			}

			// Re-read after PersistentPreRunE has applied .env; explicit flags win.
			gc := config.LoadGeocoder()
			flags := cmd.Flags()
			if flags.Changed("geocoder-url") {
				gc.BaseURL = baseURL
			}
			if flags.Changed("user-agent") {
				gc.UserAgent = userAgent
			}
			if flags.Changed("timeout") {
				gc.TimeoutSeconds = timeout
			}
			if err := gc.Validate(); err != nil {
				return err
			}

			resolver := &geocode.NominatimClient{
				BaseURL:    gc.BaseURL,
				UserAgent:  gc.UserAgent,
				HTTPClient: &http.Client{Timeout: gc.Timeout()},
			}
			logger := loggerFor(cmd).With().Str("component", "geocode").Logger()

			fmt.Fprintln(cmd.OutOrStdout(), geocode.DisplayLocation(cmd.Context(), resolver, lat, lon, logger))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in decimal degrees")
	cmd.Flags().StringVar(&baseURL, "geocoder-url", defaults.BaseURL, "Reverse geocoding service base URL (GEOCODER_BASE_URL)")
	cmd.Flags().StringVar(&userAgent, "user-agent", defaults.UserAgent, "User-Agent sent to the geocoder (GEOCODER_USER_AGENT)")
	cmd.Flags().IntVar(&timeout, "timeout", defaults.TimeoutSeconds, "HTTP timeout for the lookup in seconds (GEOCODER_TIMEOUT_SECONDS)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
