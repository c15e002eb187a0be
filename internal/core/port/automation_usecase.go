package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kwai-ads/internal/core/domain"
)

// AutomationUseCase defines the business operations exposed to the HTTP
// layer. This interface represents the primary port into the application
// domain.
type AutomationUseCase interface {
	// Create validates and stores a rule for a user. The target account must
	// be linked to the user.
	Create(ctx context.Context, userID uuid.UUID, in CreateAutomation) (*domain.AutomationRule, error)
	// List returns the rules of a user on currently linked accounts.
	List(ctx context.Context, userID uuid.UUID) ([]domain.AutomationRule, error)
	// Delete removes a rule owned by the user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// Executions returns the newest execution log entries of a rule.
	Executions(ctx context.Context, userID, id uuid.UUID, limit int) ([]domain.Execution, error)
	// RunPass runs one evaluation pass over all due rules.
	RunPass(ctx context.Context) (*PassReport, error)
}

// CreateAutomation is the request DTO for a new rule. Enumerations are
// strings so that dashboard labels can be parsed.
type CreateAutomation struct {
	Title      string  `json:"title"`
	AccountID  int64   `json:"accountId"`
	CampaignID int64   `json:"campaignId"`
	Event      string  `json:"event"`
	Condition  string  `json:"condition"`
	Threshold  float64 `json:"threshold"`
	Action     struct {
		Kind      string  `json:"kind"`
		Magnitude float64 `json:"magnitude"`
	} `json:"action"`
}

// PassReport summarises one runner invocation.
type PassReport struct {
	StartedAt time.Time     `json:"startedAt"`
	Duration  time.Duration `json:"duration"`
	Rearmed   int64         `json:"rearmed"`
	Due       int           `json:"due"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Actions   int           `json:"actions"`
}
