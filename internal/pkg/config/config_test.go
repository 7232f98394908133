package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := InitConfig("location-test-missing", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "location-test-missing", cfg.App.Name)
	assert.Equal(t, 30*time.Second, cfg.Reporter.Interval)
	assert.Equal(t, 10*time.Second, cfg.Fleet.PollInterval)
	assert.Equal(t, 13.0827, cfg.Fleet.DefaultLatitude)
	assert.True(t, cfg.Trip.ReportDuringBreak)
}

func TestInitConfig_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
server:
  port: 9991
reporter:
  interval: 5s
trip:
  report_during_break: false
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "driver.yaml"), content, 0o600))
	t.Setenv("REDIS_HOST", "redis.internal")

	cfg, err := InitConfig("driver", dir)
	require.NoError(t, err)

	assert.Equal(t, 9991, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Reporter.Interval)
	assert.False(t, cfg.Trip.ReportDuringBreak)
	assert.Equal(t, "redis.internal", cfg.Redis.Host)
}

func TestInitConfig_InvalidSection(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
fleet:
  default_latitude: 120
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fleet.yaml"), content, 0o600))

	_, err := InitConfig("fleet", dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
