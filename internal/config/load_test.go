package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabcoach/internal/config"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("VOCAB_DATABASE_URL", "postgres://localhost:5432/vocab?sslmode=disable")
	t.Setenv("VOCAB_LLM_GEMINI_API_KEY", "test-api-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/vocab?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)

	// Defaults fill everything not set in the environment.
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("VOCAB_DATABASE_URL", "postgres://localhost:5432/vocab")
	t.Setenv("VOCAB_SERVER_PORT", "9000")
	t.Setenv("VOCAB_SERVER_LOG_LEVEL", "debug")
	t.Setenv("VOCAB_LLM_MODEL_NAME", "gemini-2.5-pro")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	// No VOCAB_DATABASE_URL in the environment: validation must reject.
	t.Setenv("VOCAB_DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadInvalidLogLevel(t *testing.T) {
	t.Setenv("VOCAB_DATABASE_URL", "postgres://localhost:5432/vocab")
	t.Setenv("VOCAB_SERVER_LOG_LEVEL", "chatty")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadMissingAPIKeyIsAllowed(t *testing.T) {
	// The credential is deliberately optional at load time; the practice
	// service fails with a missing-credentials error on first use instead.
	t.Setenv("VOCAB_DATABASE_URL", "postgres://localhost:5432/vocab")
	t.Setenv("VOCAB_LLM_GEMINI_API_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.LLM.GeminiAPIKey)
}
