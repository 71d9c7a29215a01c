package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:8080/")
	t.Setenv("SESSION_SECRET", "session-secret")
	t.Setenv("FLASH_SECRET", "flash-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.App.Port)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.API.RetryMax)
	assert.Equal(t, "jwt", cfg.Session.CookieName)
	assert.Equal(t, "/login", cfg.Session.LoginURL)
	assert.Equal(t, 30*time.Second, cfg.Snapshot.TTL)
	assert.Equal(t, time.Minute, cfg.Snapshot.SweepInterval)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_CORSOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"port", "APP_PORT", "abc"},
		{"timeout", "API_TIMEOUT", "ten"},
		{"retry", "API_RETRY_MAX", "x"},
		{"ttl", "SNAPSHOT_TTL", "soon"},
		{"base url scheme", "API_BASE_URL", "localhost:8080"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(c.key, c.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_RequiredSecrets(t *testing.T) {
	cfg := &Config{
		API:      APIConfig{BaseURL: "http://api.test"},
		Session:  SessionConfig{Secret: "s"},
		Snapshot: SnapshotConfig{SweepInterval: time.Minute},
	}
	assert.EqualError(t, cfg.Validate(), "FLASH_SECRET is required")

	cfg.Session.FlashSecret = "f"
	assert.NoError(t, cfg.Validate())

	cfg.Session.Secret = ""
	assert.EqualError(t, cfg.Validate(), "SESSION_SECRET is required")
}

func TestLogLevel(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "DEBUG"}}
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())

	cfg.App.LogLevel = "bogus"
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}
