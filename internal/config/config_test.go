package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "lostfound-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())

	assert.Equal(t, 24*time.Hour, cfg.Sweep.Interval)
	assert.Equal(t, 30, cfg.Sweep.MaxAgeDays)
	assert.Equal(t, 30*24*time.Hour, cfg.Sweep.MaxAge())

	assert.False(t, cfg.Auth.SeedDemoAccount)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SWEEP_INTERVAL", "1h")
	t.Setenv("SWEEP_MAX_AGE_DAYS", "7")
	t.Setenv("AUTH_SEED_DEMO_ACCOUNT", "true")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, time.Hour, cfg.Sweep.Interval)
	assert.Equal(t, 7*24*time.Hour, cfg.Sweep.MaxAge())
	assert.True(t, cfg.Auth.SeedDemoAccount)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "often")

	_, err := Load()
	assert.Error(t, err)
}
