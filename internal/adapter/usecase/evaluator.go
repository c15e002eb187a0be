package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/cel-go/cel"

	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port"
	"kwai-ads/internal/metrics"
)

// conditionExprs are the CEL expressions backing each condition. They are
// compiled once and evaluated with the metric value and rule threshold.
var conditionExprs = map[domain.Condition]string{
	domain.ConditionGreaterThan: "value > threshold",
	domain.ConditionLessThan:    "value < threshold",
}

// Evaluation is the outcome of checking one rule against one ad set.
type Evaluation struct {
	Value       float64
	Missing     bool
	Satisfied   bool
	WindowStart time.Time
	WindowEnd   time.Time
}

// Evaluator fetches the metric snapshot of an ad set and checks the rule
// condition against it.
type Evaluator struct {
	platform port.AdsPlatform
	logger   *slog.Logger
	window   time.Duration
	programs map[domain.Condition]cel.Program
	now      func() time.Time
}

// NewEvaluator compiles the condition programs. window is the trailing
// reporting period ending at evaluation time.
func NewEvaluator(platform port.AdsPlatform, window time.Duration, logger *slog.Logger) (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("value", cel.DoubleType),
		cel.Variable("threshold", cel.DoubleType),
	)
	if err != nil {
		return nil, fmt.Errorf("create condition environment: %w", err)
	}

	programs := make(map[domain.Condition]cel.Program, len(conditionExprs))
	for cond, expr := range conditionExprs {
		ast, iss := env.Compile(expr)
		if iss != nil && iss.Err() != nil {
			return nil, fmt.Errorf("compile condition %s: %w", cond, iss.Err())
		}
		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("program condition %s: %w", cond, err)
		}
		programs[cond] = prg
	}

	return &Evaluator{
		platform: platform,
		logger:   logger,
		window:   window,
		programs: programs,
		now:      time.Now,
	}, nil
}

// Evaluate checks rule against the trailing window metrics of set. A
// snapshot without the rule event is not evidence of a violation: it
// yields Satisfied=false and Missing=true without an error.
func (e *Evaluator) Evaluate(ctx context.Context, rule domain.AutomationRule, set domain.AdSet) (Evaluation, error) {
	end := e.now()
	start := end.Add(-e.window)
	res := Evaluation{WindowStart: start, WindowEnd: end}

	snap, err := e.platform.QueryMetric(ctx, rule.AccountID, set.ID, start, end)
	if err != nil {
		return res, fmt.Errorf("query metric: %w", err)
	}

	value, ok := snap.Value(rule.Event)
	if !ok {
		metrics.MissingMetrics.WithLabelValues(string(rule.Event)).Inc()
		e.logger.Warn("metric missing, condition not satisfied",
			slog.String("automation_id", rule.ID.String()),
			slog.Int64("unit_id", set.ID),
			slog.String("event", string(rule.Event)),
			slog.Any("error", domain.ErrMetricMissing))
		res.Missing = true
		return res, nil
	}
	res.Value = value

	res.Satisfied, err = e.Compare(rule.Condition, value, rule.Threshold)
	if err != nil {
		return res, err
	}
	return res, nil
}

// Compare applies cond to value and threshold.
func (e *Evaluator) Compare(cond domain.Condition, value, threshold float64) (bool, error) {
	prg, ok := e.programs[cond]
	if !ok {
		return false, &domain.ValidationError{Field: "condition", Message: fmt.Sprintf("unsupported condition %q", cond)}
	}
	out, _, err := prg.Eval(map[string]any{"value": value, "threshold": threshold})
	if err != nil {
		return false, fmt.Errorf("evaluate condition %s: %w", cond, err)
	}
	matched, ok := out.Value().(bool)
	return ok && matched, nil
}
