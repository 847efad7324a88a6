package middleware

import (
	"testing"

	"marketdesk/config"

	"github.com/stretchr/testify/assert"
)

func TestGetLimiterUsesConfiguredRate(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = orig })

	config.AppConfig.MaxRequestsPerMin = 5
	limiter := limiterStore.getLimiter("10.0.0.1")
	assert.Equal(t, 5, limiter.Burst())

	// Unset config falls back to the default.
	config.AppConfig.MaxRequestsPerMin = 0
	limiter = limiterStore.getLimiter("10.0.0.2")
	assert.Equal(t, defaultRequestsPerMin, limiter.Burst())
}
