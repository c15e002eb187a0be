package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"kwai-ads/internal/adapter/kwai"
	"kwai-ads/internal/adapter/postgres"
	"kwai-ads/internal/adapter/redis"
	"kwai-ads/internal/adapter/usecase"
	"kwai-ads/internal/config"
	"kwai-ads/internal/core/port"
	"kwai-ads/internal/db"
)

// app holds the process-wide dependencies shared by the serve and run
// commands.
type app struct {
	pool        *pgxpool.Pool
	redis       *goredis.Client
	automations *usecase.AutomationUseCase
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	a := &app{pool: pool}

	var lock port.PassLock = port.NoopLock{}
	if cfg.Redis.Addr != "" {
		a.redis, err = redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("redis connection: %w", err)
		}
		lock = redis.NewPassLock(a.redis, cfg.Redis)
	} else {
		logger.Warn("redis not configured, passes are not coordinated across instances")
	}

	httpClient := kwai.NewHTTPClient(cfg.Kwai)
	tokens := kwai.NewTokenManager(cfg.Kwai, httpClient, logger)
	platform := kwai.NewClient(cfg.Kwai, httpClient, tokens, logger)

	evaluator, err := usecase.NewEvaluator(platform, cfg.Automation.MetricWindow, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	repo := postgres.NewAutomationRepository(pool)
	runner := usecase.NewRunner(repo, platform, evaluator, usecase.NewExecutor(platform, logger), lock, usecase.RunnerOptions{
		Interval:         cfg.Automation.RescheduleInterval,
		RuleConcurrency:  cfg.Automation.RuleConcurrency,
		AdSetConcurrency: cfg.Automation.AdSetConcurrency,
	}, logger)
	a.automations = usecase.NewAutomationUseCase(repo, postgres.NewAccountRepository(pool), runner, logger)
	return a, nil
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	a.pool.Close()
}
