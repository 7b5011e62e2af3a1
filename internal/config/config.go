package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	ApiServicePort     string
	ApiGrpcPort        string
	DatabaseDriver     string
	DatabaseDSN        string
	DatabaseMaxRetries int64
	AutoMigrate        bool
	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	SecretKey          string
	SessionLifetime    int64 // Session lifetime in seconds
	RedisHost          string
	RedisPort          int64
	RedisPassword      string
	RedisDB            int64
	LoginMaxFailed     int64 // 0 disables login throttling
	LoginAttemptWindow int64 // Failed-login window in seconds
}

func LoadConfig() *Config {
	// A missing .env file is fine; the process environment still applies
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),              // Default development
		LogLevel:           getLogLevel(),                                 // Default INFO
		ApiServicePort:     getEnv("API_SERVICE_PORT", "8080"),            // Default 8080
		ApiGrpcPort:        getEnv("API_GRPC_PORT", "50052"),              // Default 50052, empty disables
		DatabaseDriver:     getDatabaseDriver(),                           // Default postgres
		DatabaseDSN:        getEnv("DATABASE_DSN", ""),                    // Built from POSTGRESQL_* when empty
		DatabaseMaxRetries: getEnvAsInt64("DATABASE_MAX_RETRIES", 30),     // Default 30 attempts
		AutoMigrate:        getEnvAsBool("AUTO_MIGRATE", false),           // Default off, run cmd/migrate instead
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),               // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),        // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "mesa_user"),        // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "mesa_password"), // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "mesa_db"),      // Default database name
		SecretKey:          getEnv("SECRET_KEY", "mesa_secret"),           // Default secret key
		SessionLifetime:    getEnvAsInt64("SESSION_LIFETIME", 86400),      // Default 24 hours
		RedisHost:          getEnv("REDIS_HOST", "redis"),                 // Default redis
		RedisPort:          getEnvAsInt64("REDIS_PORT", 6379),             // Default 6379
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),                  // Default empty
		RedisDB:            getEnvAsInt64("REDIS_DB", 0),                  // Default 0
		LoginMaxFailed:     getEnvAsInt64("LOGIN_MAX_FAILED_ATTEMPTS", 0), // Default disabled
		LoginAttemptWindow: getEnvAsInt64("LOGIN_ATTEMPT_WINDOW", 900),    // Default 15 minutes
	}

	if cfg.DatabaseDSN == "" && cfg.DatabaseDriver == DriverPostgres {
		cfg.DatabaseDSN = cfg.postgresDSN()
	}

	return cfg
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.AppEnv) == "production"
}

// SessionTTL returns the session lifetime as a duration
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionLifetime) * time.Second
}

// LoginWindow returns the failed-login window as a duration
func (c *Config) LoginWindow() time.Duration {
	return time.Duration(c.LoginAttemptWindow) * time.Second
}

// RedisAddr returns host:port for the Redis server
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

func (c *Config) postgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		c.PostgreSQLHost,
		c.PostgreSQLUser,
		c.PostgreSQLPassword,
		c.PostgreSQLDatabase,
		c.PostgreSQLPort,
	)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getDatabaseDriver() string {
	driver := strings.ToLower(getEnv("DATABASE_DRIVER", DriverPostgres))

	switch driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
		return driver
	case "sqlite3":
		return DriverSQLite
	default:
		return DriverPostgres
	}
}
