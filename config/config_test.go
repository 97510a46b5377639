package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("EMAIL_TEST_MODE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	// Outbound email defaults to test mode so a misconfigured deploy
	// never sends real mail
	assert.True(t, cfg.EmailTestMode)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG_TRUE", "yes")
	t.Setenv("FLAG_FALSE", "0")
	t.Setenv("FLAG_JUNK", "maybe")

	assert.True(t, getEnvBool("FLAG_TRUE", false))
	assert.False(t, getEnvBool("FLAG_FALSE", true))
	assert.True(t, getEnvBool("FLAG_JUNK", true))
	assert.False(t, getEnvBool("FLAG_MISSING", false))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", getEnv("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("MISSING_KEY", "fallback"))
}
