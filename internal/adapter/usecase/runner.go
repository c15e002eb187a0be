package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port"
	"kwai-ads/internal/metrics"
)

// RunnerOptions tune a Runner. Zero concurrency values mean one worker.
type RunnerOptions struct {
	// Interval is added to the pass start time to schedule the next run
	// of a rule that completed.
	Interval         time.Duration
	RuleConcurrency  int
	AdSetConcurrency int
}

// Runner performs evaluation passes. Rules are processed concurrently and
// each rule fans out over its ad sets. A failure is contained to the rule
// it occurred in.
type Runner struct {
	repo      port.AutomationRepository
	platform  port.AdsPlatform
	evaluator *Evaluator
	executor  *Executor
	lock      port.PassLock
	opts      RunnerOptions
	logger    *slog.Logger
	now       func() time.Time
}

// NewRunner wires a runner. lock may be port.NoopLock when a single
// process runs passes.
func NewRunner(
	repo port.AutomationRepository,
	platform port.AdsPlatform,
	evaluator *Evaluator,
	executor *Executor,
	lock port.PassLock,
	opts RunnerOptions,
	logger *slog.Logger,
) *Runner {
	if opts.RuleConcurrency <= 0 {
		opts.RuleConcurrency = 1
	}
	if opts.AdSetConcurrency <= 0 {
		opts.AdSetConcurrency = 1
	}
	return &Runner{
		repo:      repo,
		platform:  platform,
		evaluator: evaluator,
		executor:  executor,
		lock:      lock,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
	}
}

// RunPass processes every due rule once. It returns domain.ErrPassInProgress
// when another pass holds the lock. Store failures while selecting rules
// abort the pass; failures of individual rules are recorded on the rule and
// counted in the report.
func (r *Runner) RunPass(ctx context.Context) (*port.PassReport, error) {
	release, ok, err := r.lock.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire pass lock: %w", err)
	}
	if !ok {
		return nil, domain.ErrPassInProgress
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			r.logger.Warn("failed to release pass lock", slog.Any("error", err))
		}
	}()

	started := r.now()
	report := &port.PassReport{StartedAt: started}

	report.Rearmed, err = r.repo.RearmElapsed(ctx, started)
	if err != nil {
		return nil, fmt.Errorf("rearm rules: %w", err)
	}
	candidates, err := r.repo.ListDue(ctx, started)
	if err != nil {
		return nil, fmt.Errorf("list due rules: %w", err)
	}
	rules := make([]domain.AutomationRule, 0, len(candidates))
	for _, rule := range candidates {
		if rule.Due(started) {
			rules = append(rules, rule)
		}
	}
	report.Due = len(rules)

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(r.opts.RuleConcurrency)
	for _, rule := range rules {
		rule := rule
		g.Go(func() error {
			actions, err := r.processRule(ctx, rule, started)

			mu.Lock()
			defer mu.Unlock()
			report.Actions += actions
			if err != nil {
				report.Failed++
			} else {
				report.Succeeded++
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = r.now().Sub(started)
	metrics.PassDuration.Observe(report.Duration.Seconds())
	r.logger.Info("automation pass finished",
		slog.Int64("rearmed", report.Rearmed),
		slog.Int("due", report.Due),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
		slog.Int("actions", report.Actions),
		slog.Duration("duration", report.Duration))
	return report, nil
}

// processRule expands the campaign of rule and handles each active ad set.
// It returns the number of actions applied.
func (r *Runner) processRule(ctx context.Context, rule domain.AutomationRule, started time.Time) (int, error) {
	logger := r.logger.With(
		slog.String("automation_id", rule.ID.String()),
		slog.Int64("account_id", rule.AccountID),
		slog.Int64("campaign_id", rule.CampaignID))

	sets, err := r.platform.QueryAdSetsByCampaign(ctx, rule.AccountID, rule.CampaignID)
	if err != nil {
		return 0, r.fail(ctx, logger, rule, fmt.Errorf("expand campaign: %w", err), started)
	}

	var (
		mu      sync.Mutex
		errs    []error
		actions int
		g       errgroup.Group
	)
	g.SetLimit(r.opts.AdSetConcurrency)
	for _, set := range sets {
		if skipPaused(rule, set) {
			continue
		}
		set := set
		g.Go(func() error {
			acted, err := r.processAdSet(ctx, logger, rule, set)

			mu.Lock()
			defer mu.Unlock()
			if acted {
				actions++
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("unit %d: %w", set.ID, err))
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return actions, r.fail(ctx, logger, rule, err, started)
	}

	next := started.Add(r.opts.Interval)
	if err := r.repo.Reschedule(ctx, rule.ID, next, started); err != nil {
		metrics.RulesProcessed.WithLabelValues("error").Inc()
		logger.Error("failed to reschedule rule", slog.Any("error", err))
		return actions, err
	}
	metrics.RulesProcessed.WithLabelValues("ok").Inc()
	logger.Debug("rule processed",
		slog.Int("ad_sets", len(sets)),
		slog.Int("actions", actions),
		slog.Time("next_run_at", next))
	return actions, nil
}

// skipPaused reports whether set is left alone because a pause rule already
// switched it off. After a failed pass the unit is processed again, so a
// pause-and-duplicate whose duplicate step failed is retried.
func skipPaused(rule domain.AutomationRule, set domain.AdSet) bool {
	if set.OpenStatus != domain.OpenStatusPaused || rule.LastError != "" {
		return false
	}
	return rule.Action.Kind == domain.ActionPause || rule.Action.Kind == domain.ActionPauseAndDuplicate
}

// processAdSet evaluates one ad set and applies the rule action when the
// condition holds. Every evaluated ad set leaves an execution log entry.
func (r *Runner) processAdSet(ctx context.Context, logger *slog.Logger, rule domain.AutomationRule, set domain.AdSet) (bool, error) {
	exec := &domain.Execution{
		AutomationID: rule.ID,
		UnitID:       set.ID,
		Event:        rule.Event,
	}

	eval, err := r.evaluator.Evaluate(ctx, rule, set)
	if err != nil {
		exec.Error = err.Error()
		r.record(ctx, logger, exec)
		return false, err
	}
	if !eval.Missing {
		v := eval.Value
		exec.Value = &v
	}
	exec.Satisfied = eval.Satisfied
	if !eval.Satisfied {
		r.record(ctx, logger, exec)
		return false, nil
	}

	exec.Action = rule.Action.Kind
	err = r.executor.Execute(ctx, rule, set)
	if err != nil {
		exec.Error = err.Error()
	}
	r.record(ctx, logger, exec)
	return err == nil, err
}

func (r *Runner) record(ctx context.Context, logger *slog.Logger, exec *domain.Execution) {
	if err := r.repo.RecordExecution(context.WithoutCancel(ctx), exec); err != nil {
		logger.Warn("failed to record execution",
			slog.Int64("unit_id", exec.UnitID),
			slog.Any("error", err))
	}
}

// fail stores cause on the rule. The rule keeps its schedule and is picked
// up again by the next pass.
func (r *Runner) fail(ctx context.Context, logger *slog.Logger, rule domain.AutomationRule, cause error, started time.Time) error {
	metrics.RulesProcessed.WithLabelValues("error").Inc()
	logger.Error("rule failed", slog.Any("error", cause))
	if err := r.repo.MarkFailed(context.WithoutCancel(ctx), rule.ID, cause.Error(), started); err != nil {
		logger.Error("failed to mark rule as failed", slog.Any("error", err))
	}
	return cause
}
