package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port/mocks"
)

func newTestEvaluator(t *testing.T) (*Evaluator, *mocks.MockAdsPlatform) {
	platform := mocks.NewMockAdsPlatform(t)
	e, err := NewEvaluator(platform, 24*time.Hour, discardLogger())
	require.NoError(t, err)
	e.now = func() time.Time { return testNow }
	return e, platform
}

func TestCompare(t *testing.T) {
	e, _ := newTestEvaluator(t)

	tests := []struct {
		cond      domain.Condition
		value     float64
		threshold float64
		want      bool
	}{
		{domain.ConditionGreaterThan, 12, 10, true},
		{domain.ConditionGreaterThan, 10, 10, false},
		{domain.ConditionGreaterThan, 3, 10, false},
		{domain.ConditionLessThan, 3, 10, true},
		{domain.ConditionLessThan, 10, 10, false},
		{domain.ConditionLessThan, -1, 0, true},
	}
	for _, tt := range tests {
		got, err := e.Compare(tt.cond, tt.value, tt.threshold)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v %s %v", tt.value, tt.cond, tt.threshold)
	}

	_, err := e.Compare(domain.Condition("between"), 1, 2)
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestEvaluateUsesTrailingWindow(t *testing.T) {
	e, platform := newTestEvaluator(t)
	rule := newRule(domain.EventCPA, domain.ConditionGreaterThan, 10, domain.ActionPause, 0)

	platform.EXPECT().
		QueryMetric(mock.Anything, int64(10), int64(20), testNow.Add(-24*time.Hour), testNow).
		Return(snapshot(20, map[domain.Event]float64{domain.EventCPA: 12.5}), nil)

	res, err := e.Evaluate(context.Background(), rule, domain.AdSet{ID: 20})
	require.NoError(t, err)
	assert.True(t, res.Satisfied)
	assert.False(t, res.Missing)
	assert.Equal(t, 12.5, res.Value)
}

func TestEvaluateMissingMetricIsNotSatisfied(t *testing.T) {
	e, platform := newTestEvaluator(t)
	rule := newRule(domain.EventPurchase, domain.ConditionLessThan, 100, domain.ActionPause, 0)

	platform.EXPECT().
		QueryMetric(mock.Anything, int64(10), int64(20), mock.Anything, mock.Anything).
		Return(snapshot(20, map[domain.Event]float64{domain.EventCPA: 1}), nil)

	res, err := e.Evaluate(context.Background(), rule, domain.AdSet{ID: 20})
	require.NoError(t, err)
	assert.True(t, res.Missing)
	assert.False(t, res.Satisfied)
}

func TestEvaluatePropagatesPlatformError(t *testing.T) {
	e, platform := newTestEvaluator(t)
	rule := newRule(domain.EventCPA, domain.ConditionGreaterThan, 10, domain.ActionPause, 0)

	platform.EXPECT().
		QueryMetric(mock.Anything, int64(10), int64(20), mock.Anything, mock.Anything).
		Return(domain.MetricSnapshot{}, &domain.AuthRefreshError{Err: errors.New("invalid grant")})

	_, err := e.Evaluate(context.Background(), rule, domain.AdSet{ID: 20})
	assert.ErrorIs(t, err, domain.ErrAuthRefreshFailed)
}
