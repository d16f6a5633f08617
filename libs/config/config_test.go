package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "studyloop")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "studyloop")
	t.Setenv("JWT_SECRET", "secret")
	for _, key := range []string{
		"SERVER_PORT", "REQUEST_TIMEOUT", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
		"JWT_TOKEN_EXPIRY", "BCRYPT_COST", "RATE_LIMIT_PER_MINUTE", "PUBLIC_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Duration(0), cfg.JWT.TokenExpiry)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, 100, cfg.Security.RateLimitPerMinute)
	assert.Empty(t, cfg.PublicDir)
	assert.Equal(t, "studyloop:pw@tcp(localhost:3306)/studyloop?parseTime=true&charset=utf8mb4&loc=UTC", cfg.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local, http://b.local ,")
	t.Setenv("JWT_TOKEN_EXPIRY", "24h")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("PUBLIC_DIR", "./public")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenExpiry)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, "./public", cfg.PublicDir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "missing jwt secret", key: "JWT_SECRET", value: ""},
		{name: "missing db host", key: "DB_HOST", value: ""},
		{name: "non numeric db port", key: "DB_PORT", value: "mysql"},
		{name: "negative token expiry", key: "JWT_TOKEN_EXPIRY", value: "-1h"},
		{name: "bcrypt cost too low", key: "BCRYPT_COST", value: "2"},
		{name: "zero rate limit", key: "RATE_LIMIT_PER_MINUTE", value: "0"},
		{name: "bad request timeout", key: "REQUEST_TIMEOUT", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
