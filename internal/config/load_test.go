package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COLLAGE_LLM_GEMINI_API_KEY", "test-api-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.LLM.ModelName)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
	assert.Equal(t, time.Second, cfg.LLM.RetryBackoff())
	assert.Equal(t, 8, cfg.Collage.MaxSlots)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("COLLAGE_LLM_GEMINI_API_KEY", "test-api-key")
	t.Setenv("COLLAGE_SERVER_PORT", "9090")
	t.Setenv("COLLAGE_SERVER_LOG_LEVEL", "debug")
	t.Setenv("COLLAGE_LLM_RETRY_BACKOFF_MS", "250")
	t.Setenv("COLLAGE_COLLAGE_MAX_SLOTS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.LLM.RetryBackoff())
	assert.Equal(t, 4, cfg.Collage.MaxSlots)
}

func TestLoadFailsWithoutAPIKey(t *testing.T) {
	t.Setenv("COLLAGE_LLM_GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFailsOnInvalidLogLevel(t *testing.T) {
	t.Setenv("COLLAGE_LLM_GEMINI_API_KEY", "test-api-key")
	t.Setenv("COLLAGE_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
