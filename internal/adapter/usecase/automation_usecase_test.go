package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port"
	"kwai-ads/internal/core/port/mocks"
)

func newTestUseCase(t *testing.T) (*AutomationUseCase, *mocks.MockAutomationRepository, *mocks.MockAccountDirectory) {
	repo := mocks.NewMockAutomationRepository(t)
	accounts := mocks.NewMockAccountDirectory(t)
	platform := mocks.NewMockAdsPlatform(t)
	logger := discardLogger()

	evaluator, err := NewEvaluator(platform, 24*time.Hour, logger)
	require.NoError(t, err)
	runner := NewRunner(repo, platform, evaluator, NewExecutor(platform, logger), port.NoopLock{}, RunnerOptions{Interval: 5 * time.Minute}, logger)
	return NewAutomationUseCase(repo, accounts, runner, logger), repo, accounts
}

func createRequest() port.CreateAutomation {
	in := port.CreateAutomation{
		Title:      "Pause expensive sets",
		AccountID:  1001,
		CampaignID: 55,
		Event:      "CPA",
		Condition:  "maior que",
		Threshold:  25,
	}
	in.Action.Kind = "desativar"
	return in
}

func TestCreateAutomation(t *testing.T) {
	uc, repo, accounts := newTestUseCase(t)
	userID := uuid.New()

	accounts.EXPECT().LinkedAccounts(mock.Anything, userID).Return([]int64{1001, 1002}, nil)
	repo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(r *domain.AutomationRule) bool {
			return r.UserID == userID &&
				r.Event == domain.EventCPA &&
				r.Condition == domain.ConditionGreaterThan &&
				r.Action.Kind == domain.ActionPause
		})).
		Run(func(_ context.Context, r *domain.AutomationRule) { r.ID = uuid.New() }).
		Return(nil)

	rule, err := uc.Create(context.Background(), userID, createRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rule.ID)
	assert.Equal(t, int64(55), rule.CampaignID)
}

func TestCreateAutomationRejectsUnlinkedAccount(t *testing.T) {
	uc, _, accounts := newTestUseCase(t)
	userID := uuid.New()

	accounts.EXPECT().LinkedAccounts(mock.Anything, userID).Return([]int64{1002}, nil)

	_, err := uc.Create(context.Background(), userID, createRequest())
	assert.ErrorIs(t, err, domain.ErrAccountNotLinked)
}

func TestCreateAutomationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*port.CreateAutomation)
		field  string
	}{
		{"unknown event", func(in *port.CreateAutomation) { in.Event = "impressions" }, "event"},
		{"unknown condition", func(in *port.CreateAutomation) { in.Condition = "equals" }, "condition"},
		{"unknown action", func(in *port.CreateAutomation) { in.Action.Kind = "delete" }, "action.kind"},
		{"short title", func(in *port.CreateAutomation) { in.Title = "ab" }, "title"},
		{"bid without magnitude", func(in *port.CreateAutomation) { in.Action.Kind = "increase-bid" }, "action.magnitude"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newTestUseCase(t)
			in := createRequest()
			tt.mutate(&in)

			_, err := uc.Create(context.Background(), uuid.New(), in)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestListAutomationsScopesToLinkedAccounts(t *testing.T) {
	uc, repo, accounts := newTestUseCase(t)
	userID := uuid.New()
	rules := []domain.AutomationRule{{ID: uuid.New(), UserID: userID, AccountID: 1001}}

	accounts.EXPECT().LinkedAccounts(mock.Anything, userID).Return([]int64{1001}, nil)
	repo.EXPECT().ListByUser(mock.Anything, userID, []int64{1001}).Return(rules, nil)

	got, err := uc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, rules, got)
}

func TestDeleteAutomationNotFound(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	userID, id := uuid.New(), uuid.New()

	repo.EXPECT().Delete(mock.Anything, id, userID).Return(domain.ErrNotFound)

	err := uc.Delete(context.Background(), userID, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecutionsClampsLimit(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	userID, id := uuid.New(), uuid.New()

	repo.EXPECT().Get(mock.Anything, id, userID).Return(&domain.AutomationRule{ID: id}, nil)
	repo.EXPECT().ListExecutions(mock.Anything, id, userID, defaultExecutionLimit).Return(nil, nil).Once()
	repo.EXPECT().ListExecutions(mock.Anything, id, userID, maxExecutionLimit).Return(nil, nil).Once()

	_, err := uc.Executions(context.Background(), userID, id, 0)
	require.NoError(t, err)
	_, err = uc.Executions(context.Background(), userID, id, 10_000)
	require.NoError(t, err)
}

func TestExecutionsOfForeignRule(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	userID, id := uuid.New(), uuid.New()

	repo.EXPECT().Get(mock.Anything, id, userID).Return(nil, domain.ErrNotFound)

	_, err := uc.Executions(context.Background(), userID, id, 20)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
