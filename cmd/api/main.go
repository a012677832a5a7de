package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitbuddy/internal/catalog"
	"fitbuddy/internal/config"
	"fitbuddy/internal/handler"
	"fitbuddy/internal/router"
	"fitbuddy/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting fitbuddy API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The catalogue is loaded once and stays immutable while the server runs.
	loadCtx, loadCancel := context.WithTimeout(ctx, 30*time.Second)
	foods, err := catalog.Open(loadCtx, cfg, logger)
	loadCancel()
	if err != nil {
		return fmt.Errorf("failed to load food catalogue: %w", err)
	}

	logger.Info().
		Str("source", cfg.Catalog.Source).
		Int("foods", foods.Len()).
		Strs("categories", foods.Categories()).
		Msg("food catalogue ready")

	foodService := service.NewFoodService(foods, logger)
	foodHandler := handler.NewFoodHandler(foodService, logger)
	mux := router.New(foodHandler, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
