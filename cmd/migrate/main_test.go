package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mesa-app/mesa/internal/config"
	"github.com/mesa-app/mesa/internal/database"
	"github.com/mesa-app/mesa/internal/logger"
)

func emptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file::memory:?_foreign_keys=on"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func runCommand(t *testing.T, db *gorm.DB, command string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), command, db, config.DriverSQLite, &out, logger.Discard())
	return out.String(), err
}

func TestRun_Commands(t *testing.T) {
	db := emptyDB(t)

	out, err := runCommand(t, db, "up")
	require.NoError(t, err)
	assert.Equal(t, "applied 6 migration(s)\n", out)

	out, err = runCommand(t, db, "up")
	require.NoError(t, err)
	assert.Equal(t, "applied 0 migration(s)\n", out)

	out, err = runCommand(t, db, "version")
	require.NoError(t, err)
	assert.Equal(t, "6\n", out)

	out, err = runCommand(t, db, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "applied")

	_, err = runCommand(t, db, "down")
	require.NoError(t, err)

	out, err = runCommand(t, db, "version")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestRun_Seed(t *testing.T) {
	db := emptyDB(t)

	out, err := runCommand(t, db, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Users (1):")
	assert.Contains(t, out, "Juan Pérez")
	assert.Contains(t, out, "juan@test.com")
	assert.Contains(t, out, "Restaurants (1):")
	assert.Contains(t, out, "Restaurante Prueba")
	assert.Contains(t, out, "italiana")

	out, err = runCommand(t, db, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Users (1):")
}

func TestRun_UnknownCommand(t *testing.T) {
	_, err := runCommand(t, emptyDB(t), "sideways")
	assert.ErrorContains(t, err, "unknown command")
}
