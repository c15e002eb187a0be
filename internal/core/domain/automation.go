package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	titleMinLen = 3
	titleMaxLen = 255

	// MaxDuplicates caps the copy count of a pause-and-duplicate action.
	MaxDuplicates = 50
)

// Condition is the comparator applied between a metric value and the
// rule threshold.
type Condition string

const (
	ConditionGreaterThan Condition = "greater-than"
	ConditionLessThan    Condition = "less-than"
)

// ParseCondition accepts the canonical names as well as the labels used by
// the dashboard forms.
func ParseCondition(s string) (Condition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greater-than", "maior que", ">":
		return ConditionGreaterThan, nil
	case "less-than", "menor que", "<":
		return ConditionLessThan, nil
	}
	return "", &ValidationError{Field: "condition", Message: fmt.Sprintf("unsupported condition %q", s)}
}

// ActionKind is one of the remediation actions applied to an ad set.
type ActionKind string

const (
	ActionIncreaseBid       ActionKind = "increase-bid"
	ActionDecreaseBid       ActionKind = "decrease-bid"
	ActionPause             ActionKind = "pause"
	ActionPauseAndDuplicate ActionKind = "pause-and-duplicate"
)

// ParseActionKind accepts the canonical names and the dashboard labels.
func ParseActionKind(s string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increase-bid", "aumentar bid":
		return ActionIncreaseBid, nil
	case "decrease-bid", "diminuir bid":
		return ActionDecreaseBid, nil
	case "pause", "desativar":
		return ActionPause, nil
	case "pause-and-duplicate", "desativar e duplicar":
		return ActionPauseAndDuplicate, nil
	}
	return "", &ValidationError{Field: "action.kind", Message: fmt.Sprintf("unsupported action %q", s)}
}

// Action is what a rule does to an ad set whose metric satisfies the
// condition. Magnitude is a percentage for bid changes and a copy count
// for pause-and-duplicate; it is ignored by pause.
type Action struct {
	Kind      ActionKind `json:"kind"`
	Magnitude float64    `json:"magnitude"`
}

// AutomationRule binds a metric condition on the ad sets of one campaign
// to an action. NextRunAt and HasRun are written only by the runner.
type AutomationRule struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	UserID     uuid.UUID  `json:"userId"`
	AccountID  int64      `json:"accountId"`
	CampaignID int64      `json:"campaignId"`
	Event      Event      `json:"event"`
	Condition  Condition  `json:"condition"`
	Threshold  float64    `json:"threshold"`
	Action     Action     `json:"action"`
	NextRunAt  *time.Time `json:"nextRunAt"`
	HasRun     bool       `json:"hasRun"`
	LastRunAt  *time.Time `json:"lastRunAt,omitempty"`
	LastError  string     `json:"lastError,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Validate checks the invariants a rule must hold before it is persisted.
// Account ownership is checked by the use case, not here.
func (r *AutomationRule) Validate() error {
	n := utf8.RuneCountInString(strings.TrimSpace(r.Title))
	if n < titleMinLen || n > titleMaxLen {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("must be between %d and %d characters", titleMinLen, titleMaxLen)}
	}
	if r.AccountID <= 0 {
		return &ValidationError{Field: "accountId", Message: "is required"}
	}
	if r.CampaignID <= 0 {
		return &ValidationError{Field: "campaignId", Message: "is required"}
	}
	if !r.Event.Valid() {
		return &ValidationError{Field: "event", Message: fmt.Sprintf("unsupported event %q", r.Event)}
	}
	if r.Condition != ConditionGreaterThan && r.Condition != ConditionLessThan {
		return &ValidationError{Field: "condition", Message: fmt.Sprintf("unsupported condition %q", r.Condition)}
	}
	if math.IsNaN(r.Threshold) || math.IsInf(r.Threshold, 0) {
		return &ValidationError{Field: "threshold", Message: "must be a finite number"}
	}
	return r.Action.validate()
}

func (a Action) validate() error {
	switch a.Kind {
	case ActionIncreaseBid, ActionDecreaseBid:
		if !(a.Magnitude > 0) || math.IsInf(a.Magnitude, 0) {
			return &ValidationError{Field: "action.magnitude", Message: "must be a positive percentage"}
		}
	case ActionPause:
	case ActionPauseAndDuplicate:
		if a.Magnitude < 1 || a.Magnitude > MaxDuplicates || a.Magnitude != math.Trunc(a.Magnitude) {
			return &ValidationError{Field: "action.magnitude", Message: fmt.Sprintf("must be a whole number between 1 and %d", MaxDuplicates)}
		}
	default:
		return &ValidationError{Field: "action.kind", Message: fmt.Sprintf("unsupported action %q", a.Kind)}
	}
	return nil
}

// Due reports whether the rule should be picked up by a pass started at now.
// A rule that was never scheduled is due immediately.
func (r *AutomationRule) Due(now time.Time) bool {
	if r.HasRun {
		return false
	}
	return r.NextRunAt == nil || !r.NextRunAt.After(now)
}
