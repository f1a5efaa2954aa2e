package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, "https://identitytoolkit.googleapis.com", cfg.Endpoint)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 10000, cfg.TimeoutMs)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("STRIVE_AUTH_ENABLED", "true")
	t.Setenv("STRIVE_AUTH_LOG_CALLS", "true")
	t.Setenv("STRIVE_AUTH_ENDPOINT", "http://localhost:9099")
	t.Setenv("STRIVE_AUTH_API_KEY", "local-key")
	t.Setenv("STRIVE_AUTH_TIMEOUT_MS", "2500")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, "http://localhost:9099", cfg.Endpoint)
	assert.Equal(t, "local-key", cfg.APIKey)
	assert.Equal(t, 2500, cfg.TimeoutMs)
}

func TestLoadConfig_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("STRIVE_AUTH_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 10000, cfg.TimeoutMs)
}
