package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port"
	"kwai-ads/internal/metrics"
)

var (
	hundred = decimal.NewFromInt(100)
	micros  = decimal.NewFromInt(domain.MicrosPerUnit)
)

// BidUnits converts a bid in micro-units to currency units.
func BidUnits(bid int64) decimal.Decimal {
	return decimal.NewFromInt(bid).Div(micros)
}

// NewBid applies a percentage bid change to bid, both in micro-units
// (domain.MicrosPerUnit per currency unit). The result is rounded half away
// from zero. No floor is applied: the platform is the authority on minimum
// bids.
func NewBid(bid int64, kind domain.ActionKind, magnitude float64) (int64, error) {
	pct := decimal.NewFromFloat(magnitude).Div(hundred)
	factor := decimal.NewFromInt(1)
	switch kind {
	case domain.ActionIncreaseBid:
		factor = factor.Add(pct)
	case domain.ActionDecreaseBid:
		factor = factor.Sub(pct)
	default:
		return 0, fmt.Errorf("%s is not a bid action", kind)
	}
	return decimal.NewFromInt(bid).Mul(factor).Round(0).IntPart(), nil
}

// Executor applies rule actions to ad sets through the ads platform. It
// holds no state of its own.
type Executor struct {
	platform port.AdsPlatform
	logger   *slog.Logger
}

// NewExecutor returns an executor bound to platform.
func NewExecutor(platform port.AdsPlatform, logger *slog.Logger) *Executor {
	return &Executor{platform: platform, logger: logger}
}

// Execute dispatches on the action kind of rule. For pause-and-duplicate
// the duplicate step only runs once the pause succeeded.
func (x *Executor) Execute(ctx context.Context, rule domain.AutomationRule, set domain.AdSet) (err error) {
	defer func() {
		metrics.Actions.WithLabelValues(string(rule.Action.Kind), metrics.Outcome(err)).Inc()
	}()

	logger := x.logger.With(
		slog.String("automation_id", rule.ID.String()),
		slog.Int64("unit_id", set.ID),
		slog.String("action", string(rule.Action.Kind)))

	switch rule.Action.Kind {
	case domain.ActionIncreaseBid, domain.ActionDecreaseBid:
		bid, err := NewBid(set.Bid, rule.Action.Kind, rule.Action.Magnitude)
		if err != nil {
			return err
		}
		if err = x.platform.UpdateBid(ctx, rule.AccountID, set.ID, bid); err != nil {
			return fmt.Errorf("update bid: %w", err)
		}
		logger.Info("bid updated",
			slog.String("old_bid", BidUnits(set.Bid).String()),
			slog.String("new_bid", BidUnits(bid).String()))

	case domain.ActionPause:
		if err := x.platform.SetOpenStatus(ctx, rule.AccountID, set.ID, domain.OpenStatusPaused); err != nil {
			return fmt.Errorf("pause: %w", err)
		}
		logger.Info("ad set paused")

	case domain.ActionPauseAndDuplicate:
		if err := x.platform.SetOpenStatus(ctx, rule.AccountID, set.ID, domain.OpenStatusPaused); err != nil {
			return fmt.Errorf("pause before duplicate: %w", err)
		}
		count := int(rule.Action.Magnitude)
		copies, err := x.platform.DuplicateAdSet(ctx, rule.AccountID, set.ID, count)
		if err != nil {
			return fmt.Errorf("duplicate: %w", err)
		}
		logger.Info("ad set paused and duplicated", slog.Int("copies", len(copies)))

	default:
		return fmt.Errorf("unsupported action %q", rule.Action.Kind)
	}
	return nil
}
