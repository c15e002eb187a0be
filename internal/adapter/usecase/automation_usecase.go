package usecase

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port"
)

const (
	defaultExecutionLimit = 50
	maxExecutionLimit     = 500
)

// AutomationUseCase implements port.AutomationUseCase on top of the rule
// repository, the account directory and a Runner.
type AutomationUseCase struct {
	repo     port.AutomationRepository
	accounts port.AccountDirectory
	runner   *Runner
	logger   *slog.Logger
}

// NewAutomationUseCase creates the use case.
func NewAutomationUseCase(repo port.AutomationRepository, accounts port.AccountDirectory, runner *Runner, logger *slog.Logger) *AutomationUseCase {
	return &AutomationUseCase{repo: repo, accounts: accounts, runner: runner, logger: logger}
}

// Create parses the request, validates the rule and stores it. New rules
// are due on the next pass.
func (u *AutomationUseCase) Create(ctx context.Context, userID uuid.UUID, in port.CreateAutomation) (*domain.AutomationRule, error) {
	event, err := domain.ParseEvent(in.Event)
	if err != nil {
		return nil, err
	}
	cond, err := domain.ParseCondition(in.Condition)
	if err != nil {
		return nil, err
	}
	kind, err := domain.ParseActionKind(in.Action.Kind)
	if err != nil {
		return nil, err
	}

	rule := &domain.AutomationRule{
		Title:      in.Title,
		UserID:     userID,
		AccountID:  in.AccountID,
		CampaignID: in.CampaignID,
		Event:      event,
		Condition:  cond,
		Threshold:  in.Threshold,
		Action:     domain.Action{Kind: kind, Magnitude: in.Action.Magnitude},
	}
	if err = rule.Validate(); err != nil {
		return nil, err
	}

	linked, err := u.accounts.LinkedAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(linked, rule.AccountID) {
		return nil, domain.ErrAccountNotLinked
	}

	if err = u.repo.Create(ctx, rule); err != nil {
		return nil, err
	}
	u.logger.Info("automation created",
		slog.String("automation_id", rule.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int64("account_id", rule.AccountID),
		slog.Int64("campaign_id", rule.CampaignID))
	return rule, nil
}

// List returns the rules a user owns on accounts that are still linked.
func (u *AutomationUseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.AutomationRule, error) {
	linked, err := u.accounts.LinkedAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByUser(ctx, userID, linked)
}

func (u *AutomationUseCase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	u.logger.Info("automation deleted",
		slog.String("automation_id", id.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// Executions returns the newest log entries of a rule. limit is clamped to
// a sane range; zero selects the default.
func (u *AutomationUseCase) Executions(ctx context.Context, userID, id uuid.UUID, limit int) ([]domain.Execution, error) {
	if _, err := u.repo.Get(ctx, id, userID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultExecutionLimit
	case limit > maxExecutionLimit:
		limit = maxExecutionLimit
	}
	return u.repo.ListExecutions(ctx, id, userID, limit)
}

func (u *AutomationUseCase) RunPass(ctx context.Context) (*port.PassReport, error) {
	return u.runner.RunPass(ctx)
}
