package identity

import (
	"os"
	"strconv"
)

// Config holds configuration for the identity-provider client.
type Config struct {
	Enabled   bool
	LogCalls  bool
	Endpoint  string
	APIKey    string
	TimeoutMs int
}

// DefaultConfig returns identity settings with the provider disabled.
// Every goal operation works without an account; sign-in is optional
// and gates nothing locally.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		LogCalls:  false,
		Endpoint:  "https://identitytoolkit.googleapis.com",
		TimeoutMs: 10000,
	}
}

// LoadConfig reads identity configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STRIVE_AUTH_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STRIVE_AUTH_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STRIVE_AUTH_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("STRIVE_AUTH_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("STRIVE_AUTH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	return cfg
}
