package planapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:8000", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, 2*time.Second, cfg.HealthTimeout())
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, "http://localhost:8000/api/plan-trip", cfg.PlanURL())
	assert.Equal(t, "http://localhost:8000/health", cfg.HealthURL())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("TRIPPLANNER_ENDPOINT", "https://planner.example.com/")
	t.Setenv("TRIPPLANNER_TIMEOUT_MS", "1500")
	t.Setenv("TRIPPLANNER_HEALTH_TIMEOUT_MS", "250")
	t.Setenv("TRIPPLANNER_LOG_CALLS", "true")
	t.Setenv("TRIPPLANNER_LOG_LEVEL", "DEBUG")

	cfg := LoadConfig()

	assert.Equal(t, "https://planner.example.com", cfg.Endpoint)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout())
	assert.Equal(t, 250*time.Millisecond, cfg.HealthTimeout())
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://planner.example.com/api/plan-trip", cfg.PlanURL())
}

func TestLoadConfig_InvalidNumbersIgnored(t *testing.T) {
	t.Setenv("TRIPPLANNER_TIMEOUT_MS", "soon")
	t.Setenv("TRIPPLANNER_HEALTH_TIMEOUT_MS", "-5")

	cfg := LoadConfig()

	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 2000, cfg.HealthTimeoutMs)
}
