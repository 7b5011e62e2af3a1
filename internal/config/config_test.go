package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Success(t *testing.T) {
	t.Setenv("API_SERVICE_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file:mesa.db")
	t.Setenv("SESSION_LIFETIME", "3600")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg := LoadConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "9090", cfg.ApiServicePort)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "file:mesa.db", cfg.DatabaseDSN)
	assert.Equal(t, time.Hour, cfg.SessionTTL())
	assert.True(t, cfg.AutoMigrate)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.ApiServicePort)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Contains(t, cfg.DatabaseDSN, "host=db")
	assert.Contains(t, cfg.DatabaseDSN, "dbname=mesa_db")
	assert.Equal(t, int64(0), cfg.LoginMaxFailed)
	assert.False(t, cfg.AutoMigrate)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "redis:6379", cfg.RedisAddr())
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("SESSION_LIFETIME", "invalid")
	t.Setenv("AUTO_MIGRATE", "maybe")
	t.Setenv("DATABASE_DRIVER", "oracle")

	cfg := LoadConfig()

	assert.Equal(t, int64(86400), cfg.SessionLifetime)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
}

func TestLoadConfig_DriverAlias(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite3")

	cfg := LoadConfig()

	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Empty(t, cfg.DatabaseDSN)
}

func TestLoadConfig_LogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.value)
			assert.Equal(t, tt.want, LoadConfig().LogLevel)
		})
	}
}
