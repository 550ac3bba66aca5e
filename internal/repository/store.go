package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Supported store drivers.
const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// StoreOptions selects and locates the backing store.
type StoreOptions struct {
	Driver string
	// DSN is a PostgreSQL connection string, or a file path for SQLite.
	DSN string
	// DBName overrides the DSN's database for PostgreSQL. For SQLite it names
	// the file ./data/<DBName>.db when DSN is empty.
	DBName      string
	AutoMigrate bool
}

// Store bundles the repositories sharing one process-wide connection handle.
// It is opened once at startup and closed once at shutdown.
type Store struct {
	Contacts     ContactRepository
	StatusChecks StatusCheckRepository
	DB           DB

	driver string
	sqlDB  func() *sql.DB
	close  func() error
}

// OpenStore connects to the configured store and optionally applies migrations.
func OpenStore(ctx context.Context, opts StoreOptions) (*Store, error) {
	var (
		s   *Store
		err error
	)
	switch opts.Driver {
	case DriverPostgres:
		s, err = openPostgres(ctx, opts)
	case DriverSqlite:
		s, err = openSqlite(opts)
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	if opts.AutoMigrate {
		if err := s.Migrate(ctx, MigrateUp); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

func openPostgres(ctx context.Context, opts StoreOptions) (*Store, error) {
	pool, err := NewPool(ctx, opts.DSN, opts.DBName)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return NewPostgresStore(pool), nil
}

// NewPostgresStore wraps an existing pool. Closing the store closes the pool.
func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Contacts:     NewPgContactRepository(pool),
		StatusChecks: NewPgStatusCheckRepository(pool),
		DB:           pool,
		driver:       DriverPostgres,
		sqlDB:        func() *sql.DB { return stdlib.OpenDBFromPool(pool) },
		close: func() error {
			pool.Close()
			return nil
		},
	}
}

func openSqlite(opts StoreOptions) (*Store, error) {
	path := opts.DSN
	if path == "" {
		name := opts.DBName
		if name == "" {
			name = "frontier"
		}
		path = filepath.Join("data", name+".db")
	}
	db, err := NewSqliteDB(WithPath(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return NewSqliteStore(db), nil
}

// NewSqliteStore wraps an existing sqlx handle. Closing the store closes db.
func NewSqliteStore(db *sqlx.DB) *Store {
	return &Store{
		Contacts:     NewSqliteContactRepository(db),
		StatusChecks: NewSqliteStatusCheckRepository(db),
		DB:           sqlxPinger{db},
		driver:       DriverSqlite,
		sqlDB:        func() *sql.DB { return db.DB },
		close:        db.Close,
	}
}

// Driver reports which backend the store uses.
func (s *Store) Driver() string { return s.driver }

// Migrate runs a goose migration command against the store.
func (s *Store) Migrate(ctx context.Context, command string) error {
	db := s.sqlDB()
	if s.driver == DriverPostgres {
		// The *sql.DB borrows connections from the pool; closing it leaves the pool open.
		defer db.Close()
	}
	return Migrate(ctx, db, s.driver, command)
}

// Close releases the connection handle.
func (s *Store) Close() error {
	err := s.close()
	slog.Info("database connection closed", "driver", s.driver)
	return err
}

type sqlxPinger struct {
	db *sqlx.DB
}

func (p sqlxPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
