package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"kwai-ads/internal/core/domain"
)

// RecordExecution appends an execution log entry.
func (r *AutomationRepository) RecordExecution(ctx context.Context, exec *domain.Execution) error {
	if exec.CreatedAt.IsZero() {
		exec.CreatedAt = time.Now().UTC()
	}
	var action, errText *string
	if exec.Action != "" {
		s := string(exec.Action)
		action = &s
	}
	if exec.Error != "" {
		errText = &exec.Error
	}
	return r.pool.QueryRow(ctx, `INSERT INTO automation_executions
(automation_id, unit_id, event, value, satisfied, action_kind, error, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`,
		exec.AutomationID, exec.UnitID, exec.Event, exec.Value, exec.Satisfied, action, errText, exec.CreatedAt).
		Scan(&exec.ID)
}

// ListExecutions returns the newest entries of a rule owned by userID.
func (r *AutomationRepository) ListExecutions(ctx context.Context, automationID, userID uuid.UUID, limit int) ([]domain.Execution, error) {
	rows, err := r.pool.Query(ctx, `SELECT e.id, e.automation_id, e.unit_id, e.event, e.value, e.satisfied,
            COALESCE(e.action_kind, ''), COALESCE(e.error, ''), e.created_at
        FROM automation_executions e
        JOIN automations a ON a.id = e.automation_id
        WHERE e.automation_id = $1 AND a.user_id = $2
        ORDER BY e.created_at DESC, e.id DESC
        LIMIT $3`, automationID, userID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Execution, error) {
		var e domain.Execution
		err := row.Scan(&e.ID, &e.AutomationID, &e.UnitID, &e.Event, &e.Value, &e.Satisfied, &e.Action, &e.Error, &e.CreatedAt)
		return e, err
	})
}
