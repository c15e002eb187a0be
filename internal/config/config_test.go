package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "@every 5m", cfg.Automation.Schedule)
	assert.Equal(t, 5*time.Minute, cfg.Automation.RescheduleInterval)
	assert.Equal(t, 100, cfg.Kwai.PageSize)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadPrefixes(t *testing.T) {
	t.Setenv("KWAI_CLIENT_ID", "client")
	t.Setenv("KWAI_SECRET_KEY", "secret")
	t.Setenv("AUTOMATION_RESCHEDULE_INTERVAL", "10m")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "client", cfg.Kwai.ClientID)
	assert.Equal(t, "secret", cfg.Kwai.ClientSecret)
	assert.Equal(t, 10*time.Minute, cfg.Automation.RescheduleInterval)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}
