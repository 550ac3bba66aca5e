package repository

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const sqliteDriverName = "sqlite3"

// MemoryPath selects an in-memory SQLite database.
const MemoryPath = ":memory:"

const defaultPragma = `
PRAGMA journal_mode=WAL;
PRAGMA foreign_keys=ON;
PRAGMA temp_store=MEMORY;
`

type sqliteConfig struct {
	path            string
	pragmas         string
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
}

// SqliteOption configures NewSqliteDB.
type SqliteOption func(*sqliteConfig)

// WithPath sets the database file. Use MemoryPath for an in-memory database.
func WithPath(path string) SqliteOption {
	return func(c *sqliteConfig) {
		c.path = path
	}
}

// WithPragmas replaces the default pragma block.
func WithPragmas(pragmas string) SqliteOption {
	return func(c *sqliteConfig) {
		c.pragmas = pragmas
	}
}

// WithMaxOpenConns sets the maximum number of open connections.
func WithMaxOpenConns(n int) SqliteOption {
	return func(c *sqliteConfig) {
		c.maxOpenConns = n
	}
}

// WithConnMaxLifetime sets the maximum lifetime of a connection.
func WithConnMaxLifetime(d time.Duration) SqliteOption {
	return func(c *sqliteConfig) {
		c.connMaxLifetime = d
	}
}

// NewSqliteDB opens a SQLite database through sqlx.
//
// An in-memory database lives inside a single connection, so it is always
// limited to one open connection regardless of WithMaxOpenConns.
func NewSqliteDB(opts ...SqliteOption) (*sqlx.DB, error) {
	cfg := &sqliteConfig{
		path:         MemoryPath,
		pragmas:      defaultPragma,
		maxIdleConns: 2,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var dsn string
	if cfg.path == MemoryPath {
		dsn = MemoryPath
		cfg.maxOpenConns = 1
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
			return nil, fmt.Errorf("ensure parent directory: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_txlock=immediate&_pragma=busy_timeout(5000)", cfg.path)
	}

	slog.Info("db", "driver", sqliteDriverName, "path", cfg.path)
	db, err := sqlx.Connect(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.maxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.maxOpenConns)
	}
	if cfg.maxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.maxIdleConns)
	}
	if cfg.connMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.connMaxLifetime)
	}

	if cfg.pragmas != "" {
		if _, err := db.Exec(cfg.pragmas); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragmas: %w", err)
		}
	}

	return db, nil
}
