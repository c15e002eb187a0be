package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kwai-ads/internal/core/domain"
)

// AutomationRepository implements port.AutomationRepository using pgxpool
// for PostgreSQL.
type AutomationRepository struct {
	pool *pgxpool.Pool
}

// NewAutomationRepository returns a new repository instance.
func NewAutomationRepository(pool *pgxpool.Pool) *AutomationRepository {
	return &AutomationRepository{pool: pool}
}

const automationColumns = `
    id, user_id, title, account_id, campaign_id, event, comparator, threshold,
    action_kind, action_magnitude, next_run_at, has_run, last_run_at,
    COALESCE(last_error, ''), created_at, updated_at`

func scanAutomation(row pgx.CollectableRow) (domain.AutomationRule, error) {
	var r domain.AutomationRule
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.Title,
		&r.AccountID,
		&r.CampaignID,
		&r.Event,
		&r.Condition,
		&r.Threshold,
		&r.Action.Kind,
		&r.Action.Magnitude,
		&r.NextRunAt,
		&r.HasRun,
		&r.LastRunAt,
		&r.LastError,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

// Create inserts a rule with a fresh id. The scheduling fields are reset so
// the rule is due on the next pass.
func (r *AutomationRepository) Create(ctx context.Context, rule *domain.AutomationRule) error {
	rule.ID = uuid.New()
	rule.NextRunAt = nil
	rule.HasRun = false
	now := time.Now().UTC()
	rule.CreatedAt = now
	rule.UpdatedAt = now
	_, err := r.pool.Exec(ctx, `INSERT INTO automations
(id, user_id, title, account_id, campaign_id, event, comparator, threshold, action_kind, action_magnitude, next_run_at, has_run, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NULL,false,$11,$11)`,
		rule.ID, rule.UserID, rule.Title, rule.AccountID, rule.CampaignID, rule.Event, rule.Condition,
		rule.Threshold, rule.Action.Kind, rule.Action.Magnitude, now)
	return err
}

// ListByUser returns the rules of a user restricted to accountIDs.
func (r *AutomationRepository) ListByUser(ctx context.Context, userID uuid.UUID, accountIDs []int64) ([]domain.AutomationRule, error) {
	if len(accountIDs) == 0 {
		return []domain.AutomationRule{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT`+automationColumns+`
        FROM automations
        WHERE user_id = $1 AND account_id = ANY($2)
        ORDER BY created_at DESC`, userID, accountIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAutomation)
}

// Get returns a rule owned by userID.
func (r *AutomationRepository) Get(ctx context.Context, id, userID uuid.UUID) (*domain.AutomationRule, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+automationColumns+`
        FROM automations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return nil, err
	}
	rule, err := pgx.CollectExactlyOneRow(rows, scanAutomation)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// Delete removes a rule owned by userID. Its execution log is removed by
// the foreign key cascade.
func (r *AutomationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM automations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RearmElapsed clears has_run on rules whose scheduling window elapsed.
func (r *AutomationRepository) RearmElapsed(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE automations
        SET has_run = false, updated_at = $1
        WHERE has_run AND next_run_at IS NOT NULL AND next_run_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListDue returns rules not yet run in the current window whose next run
// time is unset or reached. Rules never scheduled come first.
func (r *AutomationRepository) ListDue(ctx context.Context, now time.Time) ([]domain.AutomationRule, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+automationColumns+`
        FROM automations
        WHERE has_run = false AND (next_run_at IS NULL OR next_run_at <= $1)
        ORDER BY next_run_at ASC NULLS FIRST, created_at ASC`, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAutomation)
}

// Reschedule records a successful pass over a rule.
func (r *AutomationRepository) Reschedule(ctx context.Context, id uuid.UUID, nextRunAt, ranAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE automations
        SET next_run_at = $2, has_run = true, last_run_at = $3, last_error = NULL, updated_at = now()
        WHERE id = $1`, id, nextRunAt, ranAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkFailed stores the failure reason without touching the schedule, so
// the rule stays due.
func (r *AutomationRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string, ranAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE automations
        SET last_error = $2, last_run_at = $3, updated_at = now()
        WHERE id = $1`, id, reason, ranAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
