package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultConfig returns the configuration used when none is provided.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits. Full evaluations
// and file extraction run the whole analysis pipeline, so they get the
// tightest budget.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/v1/evaluate", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/v1/evaluate/batch", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
		{Path: "/api/v1/extract/file", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Individual analysis stages are cheaper
		{Path: "/api/v1/parse/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/api/v1/analysis/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
