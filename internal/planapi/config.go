package planapi

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// PlanPath is the path of the trip planning endpoint on the service.
const PlanPath = "/api/plan-trip"

// HealthPath is the path of the service's liveness probe.
const HealthPath = "/health"

// Config holds all configuration for talking to the planning service.
type Config struct {
	Endpoint        string
	TimeoutMs       int
	HealthTimeoutMs int
	LogCalls        bool
	LogLevel        string
}

// DefaultConfig returns a Config pointing at a planning service on localhost.
func DefaultConfig() Config {
	return Config{
		Endpoint:        "http://localhost:8000",
		TimeoutMs:       30000,
		HealthTimeoutMs: 2000,
		LogCalls:        false,
		LogLevel:        "info",
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TRIPPLANNER_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TRIPPLANNER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TRIPPLANNER_HEALTH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HealthTimeoutMs = n
		}
	}
	if v := os.Getenv("TRIPPLANNER_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TRIPPLANNER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	return cfg
}

// Timeout returns the per-request timeout for plan calls.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// HealthTimeout returns the timeout for the liveness probe.
func (c Config) HealthTimeout() time.Duration {
	return time.Duration(c.HealthTimeoutMs) * time.Millisecond
}

// PlanURL is the absolute URL of the planning endpoint.
func (c Config) PlanURL() string {
	return strings.TrimRight(c.Endpoint, "/") + PlanPath
}

// HealthURL is the absolute URL of the liveness probe.
func (c Config) HealthURL() string {
	return strings.TrimRight(c.Endpoint, "/") + HealthPath
}
