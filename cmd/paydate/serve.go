package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/warp/paydate-engine/api"
	"github.com/warp/paydate-engine/store/sqlite"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer store.Close()

	if err := seedIfEmpty(ctx, store); err != nil {
		return err
	}

	handler := api.NewHandler(store, api.Limits{
		DefaultCount: cfg.Paydates.DefaultCount,
		MaxCount:     cfg.Paydates.MaxCount,
		AdjustLimit:  cfg.Paydates.AdjustLimit,
	}, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      api.NewRouter(handler, cfg.HTTP.AllowedOrigins),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.HTTP.Port).Str("db", cfg.DB.Path).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info().Msg("server stopped")
	return nil
}

// seedIfEmpty loads the configured calendar into a fresh database.
func seedIfEmpty(ctx context.Context, store *sqlite.Store) error {
	count, err := store.CountHolidays(ctx)
	if err != nil {
		return fmt.Errorf("count holidays: %w", err)
	}
	if count > 0 {
		return nil
	}

	holidays, err := cfg.HolidaysOrDefault()
	if err != nil {
		return err
	}
	if err := store.SeedHolidays(ctx, holidays); err != nil {
		return fmt.Errorf("seed holidays: %w", err)
	}
	logger.Info().Int("count", len(holidays)).Msg("holiday calendar seeded")
	return nil
}
