package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "SERVER_HOST", "DB_PATH",
		"ADMIN_API_KEY", "DISABLE_ADMIN_AUTH",
		"MAX_TEXT_BYTES", "CACHE_TTL", "DISABLE_CACHE",
		"DISABLE_RATE_LIMIT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("DISABLE_ADMIN_AUTH", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.ServerHost)
	assert.Equal(t, "./extractions.db", cfg.DBPath)
	assert.Equal(t, 1<<20, cfg.MaxTextBytes)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.DisableCache)
	assert.False(t, cfg.DisableRateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("DB_PATH", "/tmp/bl.db")
	t.Setenv("ADMIN_API_KEY", "secret")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("MAX_TEXT_BYTES", "2048")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.Equal(t, "/tmp/bl.db", cfg.DBPath)
	assert.Equal(t, "secret", cfg.AdminAPIKey)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 2048, cfg.MaxTextBytes)
	assert.True(t, cfg.DisableRateLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "Non-numeric port",
			env:     map[string]string{"SERVER_PORT": "http", "DISABLE_ADMIN_AUTH": "true"},
			wantErr: "invalid server port",
		},
		{
			name:    "Missing admin key with auth enabled",
			env:     map[string]string{},
			wantErr: "admin API key is required",
		},
		{
			name:    "Bad log level",
			env:     map[string]string{"LOG_LEVEL": "verbose", "DISABLE_ADMIN_AUTH": "true"},
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearServerEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
