package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_HOST", "SERVER_PORT", "DATA_SOURCE", "REDIS_ADDR", "REDIS_DB",
		"TIMEZONE", "CACHE_TTL", "CHECKIN_TTL", "RATE_LIMIT", "RATE_WINDOW", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, SourceMemory, cfg.DataSource)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 60*time.Second, cfg.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.CheckInTTL)
	assert.Equal(t, 10, cfg.RateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestNewPostgres(t *testing.T) {
	t.Setenv("DATA_SOURCE", "postgres")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "flights")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("POSTGRES_SSLMODE", "")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "postgres://app:secret@db:6543/flights?sslmode=disable", cfg.Postgres.DSN())
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"SERVER_PORT": "http"}},
		{"bad source", map[string]string{"DATA_SOURCE": "mongo"}},
		{"postgres without user", map[string]string{"DATA_SOURCE": "postgres", "POSTGRES_USER": ""}},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{"bad ttl", map[string]string{"CACHE_TTL": "soon"}},
		{"negative window", map[string]string{"RATE_WINDOW": "-1s"}},
		{"zero rate limit", map[string]string{"RATE_LIMIT": "0"}},
		{"negative rate limit", map[string]string{"RATE_LIMIT": "-5"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "chatty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := New()
			assert.Error(t, err)
		})
	}
}
