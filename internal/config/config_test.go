package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{DSN: "postgres://localhost/didivui"},
		Auth: AuthConfig{
			JWTSecret:       "0123456789abcdef0123456789abcdef",
			JWTIssuer:       "didivui",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
		},
		Guestbook: GuestbookConfig{
			MaxMessageLen:  2000,
			QueuePageSize:  50,
			PublicPageSize: 20,
		},
		RateLimit: RateLimitConfig{
			Enabled:   true,
			PerMinute: 120,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	require.NoError(t, validConfig().Validate())
}

func TestValidate_ShortJWTSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.JWTSecret = "too-short"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestValidate_RefreshTTLMustExceedAccessTTL(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Auth.RefreshTokenTTL = cfg.Auth.AccessTokenTTL

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh_token_ttl")
}

func TestValidate_BadPort(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 0

	require.Error(t, cfg.Validate())
}

func TestValidate_RateLimitDisabledAllowsZero(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.PerMinute = 0

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "postgres://localhost/didivui_test")
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "didivui", cfg.Auth.JWTIssuer)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.True(t, cfg.Database.MigrateOnStart)
	assert.Equal(t, 2000, cfg.Guestbook.MaxMessageLen)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	require.Error(t, err)
}
