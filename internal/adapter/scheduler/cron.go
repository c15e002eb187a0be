// Package scheduler triggers automation passes on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port"
)

// PassRunner runs one automation pass.
type PassRunner interface {
	RunPass(ctx context.Context) (*port.PassReport, error)
}

// Scheduler invokes a PassRunner on every tick of a cron schedule. Ticks
// that fire while a pass is still running are skipped.
type Scheduler struct {
	cron    *cron.Cron
	runner  PassRunner
	timeout time.Duration
	logger  *slog.Logger
	ctx     context.Context
}

// New parses schedule, which accepts standard five-field expressions and
// descriptors such as "@every 5m".
func New(schedule string, runner PassRunner, timeout time.Duration, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	s := &Scheduler{
		runner:  runner,
		timeout: timeout,
		logger:  logger,
		ctx:     context.Background(),
	}
	s.cron = cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins firing ticks in the background. Passes run with a context
// derived from ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx = ctx
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		s.logger.Info("automation scheduler started", slog.Time("next_run", e.Next))
	}
}

// Stop prevents new ticks and returns a context that is done once the
// running pass, if any, has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	report, err := s.runner.RunPass(ctx)
	switch {
	case errors.Is(err, domain.ErrPassInProgress):
		s.logger.Info("automation pass skipped, another runner holds the lock")
	case err != nil:
		s.logger.Error("automation pass failed", slog.Any("error", err))
	default:
		s.logger.Debug("scheduled pass complete",
			slog.Int("due", report.Due),
			slog.Int("failed", report.Failed))
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
