package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrations embed.FS

// Migration commands accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
	MigrateReset  = "reset"
)

// migrationDir maps a store driver to its goose dialect and embedded directory.
func migrationDir(driver string) (dialect, dir string, err error) {
	switch driver {
	case DriverPostgres:
		return "postgres", "migrations/postgres", nil
	case DriverSqlite:
		return "sqlite3", "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

// gooseRun is a seam for testing the goose invocation.
var gooseRun = func(ctx context.Context, command string, db *sql.DB, dir string) error {
	switch command {
	case MigrateUp:
		return goose.UpContext(ctx, db, dir)
	case MigrateDown:
		return goose.DownContext(ctx, db, dir)
	case MigrateStatus:
		return goose.StatusContext(ctx, db, dir)
	case MigrateReset:
		return goose.ResetContext(ctx, db, dir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}

// Migrate runs a goose command against the embedded migrations for driver.
func Migrate(ctx context.Context, db *sql.DB, driver, command string) error {
	dialect, dir, err := migrationDir(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := gooseRun(ctx, command, db, dir); err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}

// gooseLogger routes goose output through slog.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	slog.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrate")
}

func (gooseLogger) Fatalf(format string, v ...any) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrate")
}
