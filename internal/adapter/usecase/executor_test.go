package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port/mocks"
)

func TestNewBid(t *testing.T) {
	tests := []struct {
		name      string
		bid       int64
		kind      domain.ActionKind
		magnitude float64
		want      int64
	}{
		{"decrease ten percent", 1_000_000, domain.ActionDecreaseBid, 10, 900_000},
		{"increase twenty percent", 500_000, domain.ActionIncreaseBid, 20, 600_000},
		{"fractional percent rounds", 333_333, domain.ActionIncreaseBid, 12.5, 375_000},
		{"half rounds away from zero", 5, domain.ActionIncreaseBid, 10, 6},
		{"no floor", 100, domain.ActionDecreaseBid, 150, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewBid(tt.bid, tt.kind, tt.magnitude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NewBid(100, domain.ActionPause, 10)
	assert.Error(t, err)
}

func TestBidUnits(t *testing.T) {
	assert.Equal(t, "2", BidUnits(2*domain.MicrosPerUnit).String())
	assert.Equal(t, "0.375", BidUnits(375_000).String())

	bid, err := NewBid(domain.MicrosPerUnit, domain.ActionDecreaseBid, 10)
	require.NoError(t, err)
	assert.Equal(t, "0.9", BidUnits(bid).String())
}

func TestExecuteDecreaseBid(t *testing.T) {
	platform := mocks.NewMockAdsPlatform(t)
	rule := newRule(domain.EventCPA, domain.ConditionGreaterThan, 5, domain.ActionDecreaseBid, 10)
	set := domain.AdSet{ID: 20, AccountID: 10, Bid: 1_000_000}

	platform.EXPECT().UpdateBid(mock.Anything, int64(10), int64(20), int64(900_000)).Return(nil)

	err := NewExecutor(platform, discardLogger()).Execute(context.Background(), rule, set)
	require.NoError(t, err)
}

func TestExecutePause(t *testing.T) {
	platform := mocks.NewMockAdsPlatform(t)
	rule := newRule(domain.EventCPA, domain.ConditionGreaterThan, 5, domain.ActionPause, 0)

	platform.EXPECT().SetOpenStatus(mock.Anything, int64(10), int64(20), domain.OpenStatusPaused).Return(nil)

	err := NewExecutor(platform, discardLogger()).Execute(context.Background(), rule, domain.AdSet{ID: 20})
	require.NoError(t, err)
}

func TestExecutePauseAndDuplicateOrder(t *testing.T) {
	platform := mocks.NewMockAdsPlatform(t)
	rule := newRule(domain.EventCPA, domain.ConditionGreaterThan, 5, domain.ActionPauseAndDuplicate, 3)

	pause := platform.EXPECT().
		SetOpenStatus(mock.Anything, int64(10), int64(20), domain.OpenStatusPaused).
		Return(nil)
	dup := platform.EXPECT().
		DuplicateAdSet(mock.Anything, int64(10), int64(20), 3).
		Return([]domain.AdSet{{ID: 21}, {ID: 22}, {ID: 23}}, nil)
	mock.InOrder(pause.Call, dup.Call)

	err := NewExecutor(platform, discardLogger()).Execute(context.Background(), rule, domain.AdSet{ID: 20})
	require.NoError(t, err)
}

func TestExecutePauseFailureSkipsDuplicate(t *testing.T) {
	platform := mocks.NewMockAdsPlatform(t)
	rule := newRule(domain.EventCPA, domain.ConditionGreaterThan, 5, domain.ActionPauseAndDuplicate, 2)
	perr := &domain.PlatformError{Op: "update open status", Status: 500100, Message: "unit locked"}

	platform.EXPECT().SetOpenStatus(mock.Anything, int64(10), int64(20), domain.OpenStatusPaused).Return(perr)

	err := NewExecutor(platform, discardLogger()).Execute(context.Background(), rule, domain.AdSet{ID: 20})
	require.Error(t, err)
	assert.True(t, errors.Is(err, perr))
	platform.AssertNotCalled(t, "DuplicateAdSet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
