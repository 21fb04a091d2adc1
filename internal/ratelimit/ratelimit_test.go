package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	disabled bool
}

func (c *testConfig) GetDisableRateLimit() bool {
	return c.disabled
}

func TestLimiterUnderLimit(t *testing.T) {
	limiter := NewLimiter(&testConfig{}, 3, time.Minute)

	for i := 0; i < 3; i++ {
		result := limiter.Check("10.0.0.1")
		assert.False(t, result.ShouldBlock)
		assert.Equal(t, "under_limit", result.Reason)
	}
}

func TestLimiterBlocksOverLimit(t *testing.T) {
	limiter := NewLimiter(&testConfig{}, 2, time.Minute)

	limiter.Check("10.0.0.1")
	limiter.Check("10.0.0.1")

	result := limiter.Check("10.0.0.1")
	assert.True(t, result.ShouldBlock)
	assert.Equal(t, "rate_limit_active", result.Reason)
	assert.Greater(t, result.RemainingTime, time.Duration(0))
}

func TestLimiterPerClient(t *testing.T) {
	limiter := NewLimiter(&testConfig{}, 1, time.Minute)

	assert.False(t, limiter.Check("10.0.0.1").ShouldBlock)
	assert.False(t, limiter.Check("10.0.0.2").ShouldBlock)
	assert.True(t, limiter.Check("10.0.0.1").ShouldBlock)
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&testConfig{disabled: true}, 1, time.Minute)

	for i := 0; i < 5; i++ {
		result := limiter.Check("10.0.0.1")
		assert.False(t, result.ShouldBlock)
		assert.Equal(t, "rate_limiting_disabled", result.Reason)
	}
}

func TestLimiterWindowExpiry(t *testing.T) {
	limiter := NewLimiter(&testConfig{}, 1, 10*time.Millisecond)

	assert.False(t, limiter.Check("10.0.0.1").ShouldBlock)
	assert.True(t, limiter.Check("10.0.0.1").ShouldBlock)

	time.Sleep(20 * time.Millisecond)
	assert.False(t, limiter.Check("10.0.0.1").ShouldBlock)
}

func TestLimiterReset(t *testing.T) {
	limiter := NewLimiter(&testConfig{}, 1, time.Minute)

	limiter.Check("10.0.0.1")
	limiter.Reset("10.0.0.1")
	assert.False(t, limiter.Check("10.0.0.1").ShouldBlock)
}
