package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mesa-app/mesa/internal/config"
)

const defaultSQLiteDSN = "file:mesa.db"

var ErrMissingDSN = errors.New("database DSN is required for this driver")

// ConnectDatabase opens the configured store, retrying until it answers a ping
func ConnectDatabase(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	logger.Info("🔌 [Database] Connecting to database...",
		"driver", cfg.DatabaseDriver,
	)

	var db *gorm.DB
	maxRetries := int(max(cfg.DatabaseMaxRetries, 1))
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = Open(dialector)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			logger.Warn("⏳ [Database] Connection failed, retrying...",
				"attempt", i+1,
				"max_retries", maxRetries,
				"error", err,
			)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s after %d attempts: %w", cfg.DatabaseDriver, maxRetries, err)
	}

	if cfg.DatabaseDriver == config.DriverSQLite {
		// SQLite allows a single writer
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	logger.Info("✅ [Database] Database connection established", "driver", cfg.DatabaseDriver)

	return db, nil
}

// Open opens a gorm handle over dialector and verifies the connection.
// Unique and foreign key violations are translated into gorm.ErrDuplicatedKey
// and gorm.ErrForeignKeyViolated.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// Ping reports whether the store still answers
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingDSN, driver)
		}
		return postgres.Open(dsn), nil
	case config.DriverMySQL:
		if dsn == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingDSN, driver)
		}
		return mysql.Open(withParam(dsn, "parseTime", "true")), nil
	case config.DriverSQLite:
		if dsn == "" {
			dsn = defaultSQLiteDSN
		}
		dsn = withParam(dsn, "_foreign_keys", "on")
		return sqlite.Open(withParam(dsn, "_busy_timeout", "5000")), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// withParam appends key=value to a URL-style DSN unless the key is already set
func withParam(dsn, key, value string) string {
	if strings.Contains(dsn, key+"=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + key + "=" + value
}
