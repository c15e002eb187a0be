package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kwai-ads/internal/config"
	"kwai-ads/internal/db"
)

var rootCmd = &cobra.Command{
	Use:   "kwai-ads",
	Short: "Kwai Ads automation engine",
	Long: `kwai-ads evaluates user-defined automation rules against Kwai ad set
metrics and applies bid changes, pauses and duplications when a rule
condition holds. Configuration is read from the environment.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd(), runCmd(), migrateCmd(), seedCmd())
}

// main is the entry point of the kwai-ads engine. Commands share the
// environment configuration and a structured logger.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

// loadConfig reads the configuration and builds the logger.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, cfg.Log.New(os.Stdout), nil
}

// runCmd performs one pass and exits. It is meant for external schedulers.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a single automation pass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Automation.PassTimeout)
			defer cancel()

			a, err := newApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.automations.RunPass(ctx)
			if err != nil {
				return err
			}
			if report.Failed > 0 {
				return fmt.Errorf("%d of %d rules failed", report.Failed, report.Due)
			}
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(*cobra.Command, []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if down {
				if err = db.Rollback(cfg.Psql.Addr.String()); err != nil {
					return fmt.Errorf("rollback: %w", err)
				}
				logger.Info("migrations rolled back")
				return nil
			}
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert all migrations")
	return cmd
}

// seedCmd loads demo data. It refuses to touch production databases.
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo accounts and rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Env == "prod" {
				return fmt.Errorf("refusing to seed with ENV=%s", cfg.Env)
			}
			pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
			if err != nil {
				return fmt.Errorf("database connection: %w", err)
			}
			defer pool.Close()

			if err = db.Seed(cmd.Context(), pool); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("demo data seeded", slog.String("user_id", db.DemoUserID.String()))
			return nil
		},
	}
}
