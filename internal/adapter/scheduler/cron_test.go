package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port"
	"kwai-ads/internal/core/port/mocks"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestNewRejectsInvalidSchedule(t *testing.T) {
	_, err := New("every five minutes", mocks.NewMockAutomationUseCase(t), time.Minute, discard())
	assert.Error(t, err)
}

func TestTickBoundsPassWithTimeout(t *testing.T) {
	runner := mocks.NewMockAutomationUseCase(t)
	s, err := New("@every 5m", runner, time.Minute, discard())
	require.NoError(t, err)

	runner.EXPECT().RunPass(mock.Anything).
		Run(func(ctx context.Context) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
		}).
		Return(&port.PassReport{Due: 1, Succeeded: 1}, nil).Once()

	s.tick()
}

func TestTickToleratesBusyLock(t *testing.T) {
	runner := mocks.NewMockAutomationUseCase(t)
	s, err := New("*/5 * * * *", runner, time.Minute, discard())
	require.NoError(t, err)

	runner.EXPECT().RunPass(mock.Anything).Return(nil, domain.ErrPassInProgress).Once()

	assert.NotPanics(t, s.tick)
}

func TestStartAndStop(t *testing.T) {
	s, err := New("@every 1h", mocks.NewMockAutomationUseCase(t), time.Minute, discard())
	require.NoError(t, err)

	s.Start(context.Background())
	select {
	case <-s.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
