package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kwai-ads/internal/core/domain"
)

// AutomationRepository defines the persistence layer for automation rules.
// It is an outbound port in hexagonal architecture. Scheduling writes touch
// a single rule document and need no cross-rule locking.
type AutomationRepository interface {
	// Create stores a new rule. ID, CreatedAt and UpdatedAt are assigned by
	// the repository.
	Create(ctx context.Context, rule *domain.AutomationRule) error
	// ListByUser returns the rules of a user whose account is in accountIDs.
	ListByUser(ctx context.Context, userID uuid.UUID, accountIDs []int64) ([]domain.AutomationRule, error)
	// Get returns a rule owned by userID or domain.ErrNotFound.
	Get(ctx context.Context, id, userID uuid.UUID) (*domain.AutomationRule, error)
	// Delete removes a rule owned by userID or returns domain.ErrNotFound.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// RearmElapsed clears HasRun on rules whose NextRunAt is at or before
	// now, opening a new scheduling window for them. It returns the number
	// of rules re-armed.
	RearmElapsed(ctx context.Context, now time.Time) (int64, error)
	// ListDue returns rules with HasRun unset and NextRunAt null or at or
	// before now.
	ListDue(ctx context.Context, now time.Time) ([]domain.AutomationRule, error)
	// Reschedule records a successful pass over a rule.
	Reschedule(ctx context.Context, id uuid.UUID, nextRunAt, ranAt time.Time) error
	// MarkFailed records the error of a failed pass and leaves the rule due.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, ranAt time.Time) error

	// RecordExecution appends an entry to the rule execution log.
	RecordExecution(ctx context.Context, exec *domain.Execution) error
	// ListExecutions returns the newest log entries of a rule owned by userID.
	ListExecutions(ctx context.Context, automationID, userID uuid.UUID, limit int) ([]domain.Execution, error)
}

// AccountDirectory resolves the ad accounts linked to a user.
type AccountDirectory interface {
	LinkedAccounts(ctx context.Context, userID uuid.UUID) ([]int64, error)
}
