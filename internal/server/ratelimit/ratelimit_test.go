package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/v1/evaluate/batch", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
			{Path: "/api/v1/parse/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		},
	}
}

func TestAllow_BurstExhaustionBlocks(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	allowed1, _ := limiter.Allow("1.2.3.4", "/api/v1/evaluate/batch", "POST")
	allowed2, _ := limiter.Allow("1.2.3.4", "/api/v1/evaluate/batch", "POST")
	allowed3, info := limiter.Allow("1.2.3.4", "/api/v1/evaluate/batch", "POST")

	assert.True(t, allowed1)
	assert.True(t, allowed2)
	assert.False(t, allowed3)
	assert.Equal(t, 10, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	limiter.Allow("1.2.3.4", "/api/v1/evaluate/batch", "POST")
	limiter.Allow("1.2.3.4", "/api/v1/evaluate/batch", "POST")

	allowed, _ := limiter.Allow("5.6.7.8", "/api/v1/evaluate/batch", "POST")

	assert.True(t, allowed)
}

func TestAllow_PrefixMatchApplies(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	_, info := limiter.Allow("1.2.3.4", "/api/v1/parse/sections", "POST")

	assert.Equal(t, 120, info.Limit)
}

func TestAllow_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 500; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestAllow_DisabledAlwaysAllows(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/api/v1/evaluate/batch", "POST")
		assert.True(t, allowed)
	}
}
