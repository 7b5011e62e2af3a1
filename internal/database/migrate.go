package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/mesa-app/mesa/internal/config"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const downMarker = "-- +goose Down"

// Column types differ per store; the migration files use $PK, $TS and $JSON
// and are rendered for the active driver before they run.
var columnTypes = map[string]*strings.Replacer{
	config.DriverPostgres: strings.NewReplacer(
		"$PK", "BIGSERIAL PRIMARY KEY",
		"$TS", "TIMESTAMP",
		"$JSON", "JSONB",
	),
	config.DriverMySQL: strings.NewReplacer(
		"$PK", "BIGINT AUTO_INCREMENT PRIMARY KEY",
		"$TS", "DATETIME",
		"$JSON", "JSON",
	),
	config.DriverSQLite: strings.NewReplacer(
		"$PK", "INTEGER PRIMARY KEY AUTOINCREMENT",
		"$TS", "DATETIME",
		"$JSON", "TEXT",
	),
}

var gooseDialects = map[string]goose.Dialect{
	config.DriverPostgres: goose.DialectPostgres,
	config.DriverMySQL:    goose.DialectMySQL,
	config.DriverSQLite:   goose.DialectSQLite3,
}

// Migrator applies the versioned schema to a database
type Migrator struct {
	provider *goose.Provider
	names    map[int64]string
	logger   *slog.Logger
}

// NewMigrator loads the embedded migrations rendered for driver
func NewMigrator(sqlDB *sql.DB, driver string, logger *slog.Logger) (*Migrator, error) {
	dialect, ok := gooseDialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	migrations, names, err := loadMigrations(driver)
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(dialect, sqlDB, nil,
		goose.WithGoMigrations(migrations...),
		goose.WithDisableGlobalRegistry(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}

	return &Migrator{provider: provider, names: names, logger: logger}, nil
}

// Up applies every pending migration and returns how many ran
func (m *Migrator) Up(ctx context.Context) (int, error) {
	m.logger.Info("🔄 [Database] Running migrations...")

	results, err := m.provider.Up(ctx)
	for _, r := range results {
		m.logger.Info("📦 [Database] Applied migration",
			"version", r.Source.Version,
			"name", m.names[r.Source.Version],
			"duration", r.Duration,
		)
	}
	if err != nil {
		return len(results), fmt.Errorf("failed to run migrations: %w", err)
	}

	m.logger.Info("✅ [Database] Migrations completed successfully", "applied", len(results))
	return len(results), nil
}

// Down rolls back the most recent migration
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	m.logger.Info("↩️ [Database] Rolled back migration",
		"version", result.Source.Version,
		"name", m.names[result.Source.Version],
	)
	return nil
}

// Status lists every known migration with its applied state
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	return m.provider.Status(ctx)
}

// Version returns the highest applied version, 0 on an empty database
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	return m.provider.GetDBVersion(ctx)
}

// HasPending reports whether any migration still needs to run
func (m *Migrator) HasPending(ctx context.Context) (bool, error) {
	return m.provider.HasPending(ctx)
}

func loadMigrations(driver string) ([]*goose.Migration, map[int64]string, error) {
	replacer, ok := columnTypes[driver]
	if !ok {
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	files, err := fs.Glob(embedMigrations, "migrations/*.sql")
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(files)

	migrations := make([]*goose.Migration, 0, len(files))
	names := make(map[int64]string, len(files))
	for _, file := range files {
		version, err := goose.NumericComponent(file)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid migration file name %s: %w", file, err)
		}

		raw, err := embedMigrations.ReadFile(file)
		if err != nil {
			return nil, nil, err
		}
		names[version] = path.Base(file)

		up, down := splitMigration(replacer.Replace(string(raw)))
		migrations = append(migrations, goose.NewGoMigration(version,
			&goose.GoFunc{RunTx: execStatements(up)},
			&goose.GoFunc{RunTx: execStatements(down)},
		))
	}

	return migrations, names, nil
}

// splitMigration separates the up and down halves of a migration file and
// splits each half into single statements, since MySQL rejects multi-statement
// execs.
func splitMigration(content string) (up, down []string) {
	upPart, downPart, _ := strings.Cut(content, downMarker)
	return splitStatements(upPart), splitStatements(downPart)
}

func splitStatements(sqlText string) []string {
	var lines []string
	for line := range strings.Lines(sqlText) {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var statements []string
	for stmt := range strings.SplitSeq(strings.Join(lines, ""), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func execStatements(statements []string) func(context.Context, *sql.Tx) error {
	return func(ctx context.Context, tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("%w\n%s", err, stmt)
			}
		}
		return nil
	}
}

// ErrPendingMigrations is returned when the schema is behind and migrating on boot is disabled
var ErrPendingMigrations = errors.New("database has pending migrations")

// EnsureSchema migrates the database when autoMigrate is set and otherwise
// refuses to continue while migrations are pending.
func EnsureSchema(ctx context.Context, db *gorm.DB, driver string, autoMigrate bool, logger *slog.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	migrator, err := NewMigrator(sqlDB, driver, logger)
	if err != nil {
		return err
	}

	if autoMigrate {
		_, err := migrator.Up(ctx)
		return err
	}

	pending, err := migrator.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}
	if pending {
		return fmt.Errorf("%w: run cmd/migrate up or set AUTO_MIGRATE=true", ErrPendingMigrations)
	}

	logger.Info("✅ [Database] Schema is up to date")
	return nil
}
