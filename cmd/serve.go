package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	httpadapter "kwai-ads/internal/adapter/http"
	"kwai-ads/internal/adapter/scheduler"
)

// serveCmd starts the HTTP API and, when enabled, the cron trigger. On
// SIGINT or SIGTERM it stops the trigger, waits for a running pass and
// gracefully shuts down the server.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and schedule automation passes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			a, err := newApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			var sched *scheduler.Scheduler
			if cfg.Automation.SchedulerEnabled {
				sched, err = scheduler.New(cfg.Automation.Schedule, a.automations, cfg.Automation.PassTimeout, logger)
				if err != nil {
					return err
				}
				sched.Start(ctx)
			}

			validator := httpadapter.NewJWTValidator(cfg.HTTP.JWTSecret)
			if validator == nil {
				logger.Warn("HTTP_JWT_SECRET is empty, API requests will be rejected")
			}
			handler := httpadapter.NewHandler(a.automations, validator, cfg.Automation.PassTimeout, logger)
			srv := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
				Handler: handler.Router(),
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case <-ctx.Done():
				logger.Info("shutdown signal received")
			case err = <-errCh:
				if err != nil {
					logger.Error("server error", slog.Any("error", err))
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
			defer cancel()

			if sched != nil {
				select {
				case <-sched.Stop().Done():
				case <-shutdownCtx.Done():
					logger.Warn("automation pass still running at shutdown")
				}
			}
			if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
				logger.Error("server shutdown error", slog.Any("error", shutdownErr))
			} else {
				logger.Info("server gracefully stopped")
			}
			return err
		},
	}
}
