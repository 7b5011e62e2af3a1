package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mesa-app/mesa/internal/config"
	"github.com/mesa-app/mesa/internal/database"
	"github.com/mesa-app/mesa/internal/logger"
)

// NewTestDB opens a private in-memory SQLite database with the full schema
// applied. The single connection keeps every query on the same database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file::memory:?_foreign_keys=on"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	migrator, err := database.NewMigrator(sqlDB, config.DriverSQLite, logger.Discard())
	require.NoError(t, err)

	_, err = migrator.Up(context.Background())
	require.NoError(t, err)

	return db
}

// CountRows returns the number of rows in table
func CountRows(t testing.TB, db *gorm.DB, table string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	return count
}
