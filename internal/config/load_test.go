package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Environment variables make these tests order-sensitive, so they do not run
// in parallel.

const testJWTSecret = "test-jwt-secret-that-is-32-chars-long"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MEMOPAD_DATABASE_URL", "postgres://localhost:5432/memopad_test")
	t.Setenv("MEMOPAD_AUTH_JWT_SECRET", testJWTSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/memopad_test", cfg.Database.URL)
	assert.Equal(t, testJWTSecret, cfg.Auth.JWTSecret)

	// Defaults
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10080, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 60, cfg.Auth.ResetTokenLifetimeMinutes)
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MEMOPAD_SERVER_PORT", "9090")
	t.Setenv("MEMOPAD_SERVER_LOG_LEVEL", "debug")
	t.Setenv("MEMOPAD_AUTH_TOKEN_LIFETIME_MINUTES", "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 120, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing database URL", func(t *testing.T) {
		t.Setenv("MEMOPAD_AUTH_JWT_SECRET", testJWTSecret)

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short JWT secret", func(t *testing.T) {
		t.Setenv("MEMOPAD_DATABASE_URL", "postgres://localhost:5432/memopad_test")
		t.Setenv("MEMOPAD_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("MEMOPAD_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		assert.Error(t, err)
	})
}
