package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRule() AutomationRule {
	return AutomationRule{
		Title:      "Pause expensive sets",
		AccountID:  1001,
		CampaignID: 2002,
		Event:      EventCPA,
		Condition:  ConditionGreaterThan,
		Threshold:  12.5,
		Action:     Action{Kind: ActionPause},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *AutomationRule)
		field  string
	}{
		{name: "valid", mutate: func(r *AutomationRule) {}},
		{name: "short title", mutate: func(r *AutomationRule) { r.Title = "ab" }, field: "title"},
		{name: "long title", mutate: func(r *AutomationRule) { r.Title = strings.Repeat("x", 256) }, field: "title"},
		{name: "max title", mutate: func(r *AutomationRule) { r.Title = strings.Repeat("á", 255) }},
		{name: "missing account", mutate: func(r *AutomationRule) { r.AccountID = 0 }, field: "accountId"},
		{name: "unknown event", mutate: func(r *AutomationRule) { r.Event = "ctr" }, field: "event"},
		{name: "unknown condition", mutate: func(r *AutomationRule) { r.Condition = "equals" }, field: "condition"},
		{name: "unknown action", mutate: func(r *AutomationRule) { r.Action.Kind = "delete" }, field: "action.kind"},
		{name: "zero bid change", mutate: func(r *AutomationRule) { r.Action = Action{Kind: ActionIncreaseBid} }, field: "action.magnitude"},
		{name: "fractional duplicates", mutate: func(r *AutomationRule) {
			r.Action = Action{Kind: ActionPauseAndDuplicate, Magnitude: 1.5}
		}, field: "action.magnitude"},
		{name: "duplicates", mutate: func(r *AutomationRule) {
			r.Action = Action{Kind: ActionPauseAndDuplicate, Magnitude: 3}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRule()
			tt.mutate(&r)
			err := r.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestDue(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	r := validRule()
	assert.True(t, r.Due(now), "never scheduled rule is due")

	r.NextRunAt = &past
	assert.True(t, r.Due(now))

	r.NextRunAt = &now
	assert.True(t, r.Due(now), "next run equal to now is due")

	r.NextRunAt = &future
	assert.False(t, r.Due(now))

	r.NextRunAt = &past
	r.HasRun = true
	assert.False(t, r.Due(now))
}

func TestParseAliases(t *testing.T) {
	c, err := ParseCondition("maior que")
	require.NoError(t, err)
	assert.Equal(t, ConditionGreaterThan, c)

	k, err := ParseActionKind("Desativar e duplicar")
	require.NoError(t, err)
	assert.Equal(t, ActionPauseAndDuplicate, k)

	e, err := ParseEvent("Add to Cart")
	require.NoError(t, err)
	assert.Equal(t, EventAddToCart, e)
	assert.Equal(t, "addToCart", e.ReportField())

	_, err = ParseEvent("ctr")
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestAuthRefreshErrorMatchesSentinel(t *testing.T) {
	err := error(&AuthRefreshError{Err: errors.New("boom")})
	assert.True(t, errors.Is(err, ErrAuthRefreshFailed))
	assert.Contains(t, err.Error(), "boom")
}
