//go:build integration

package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"kwai-ads/internal/config/configs"
)

func setupRedis(t *testing.T) configs.Redis {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return configs.Redis{
		Addr:    fmt.Sprintf("%s:%s", host, port.Port()),
		LockKey: "test:pass",
		LockTTL: time.Minute,
	}
}

func TestPassLockExcludesSecondHolder(t *testing.T) {
	cfg := setupRedis(t)
	ctx := context.Background()

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	first := NewPassLock(client, cfg)
	second := NewPassLock(client, cfg)

	release, ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, release(ctx))

	release, ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, release(ctx))
}
