package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]string{"-jwt-secret", "test-secret"})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "users.db", cfg.DBPath)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.AIBaseURL)
	assert.Equal(t, "gemini-1.5-pro", cfg.AIModel)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.False(t, cfg.ShowVersion)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{
		"-addr", ":9090",
		"-db", "/tmp/test.db",
		"-jwt-secret", "s3cret",
		"-token-ttl", "1h",
		"-ai-model", "gemini-1.5-flash",
		"-log-level", "debug",
		"-rate-limit", "10",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, "gemini-1.5-flash", cfg.AIModel)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10, cfg.RateLimit)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("STUDYBUDDY_ADDR", ":7070")
	t.Setenv("STUDYBUDDY_JWT_SECRET", "env-secret")
	t.Setenv("STUDYBUDDY_TOKEN_TTL", "30m")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("STUDYBUDDY_ADDR", ":7070")

	cfg, err := Load([]string{"-addr", ":9090", "-jwt-secret", "s"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is required")
}

func TestLoad_VersionSkipsJWTCheck(t *testing.T) {
	cfg, err := Load([]string{"-version"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestLoad_BadEnvDurationFallsBack(t *testing.T) {
	t.Setenv("STUDYBUDDY_TOKEN_TTL", "not-a-duration")

	cfg, err := Load([]string{"-jwt-secret", "s"})
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
}
