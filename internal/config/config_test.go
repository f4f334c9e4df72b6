package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Methods["GET"])
	assert.False(t, cfg.Methods["POST"])
	assert.Equal(t, 15*time.Second, cfg.TTL)
	assert.Equal(t, "facility-cache", cfg.Prefix)
}

func TestLoadCacheConfigOverrides(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "1m")

	cfg := LoadCacheConfig()
	assert.False(t, cfg.Enabled)
	assert.True(t, cfg.Methods["GET"])
	assert.True(t, cfg.Methods["HEAD"])
	assert.Equal(t, time.Minute, cfg.TTL)
}

func TestLoadRateLimitConfigNormalizes(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity, "capacity clamps to one")
	assert.Equal(t, 10*time.Second, cfg.TTL, "TTL raised to five refill intervals")
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "on")
	t.Setenv("X_INT", "42")
	t.Setenv("X_DUR", "bogus")

	assert.True(t, envBool("X_BOOL", false))
	assert.Equal(t, 42, envInt("X_INT", 0))
	assert.Equal(t, time.Minute, envDur("X_DUR", time.Minute), "bad duration keeps the default")
	assert.Equal(t, "fallback", envStr("X_UNSET", "fallback"))
}
