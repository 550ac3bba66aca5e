package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/frontier/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func countTables(t *testing.T, path string) int {
	t.Helper()
	db, err := repository.NewSqliteDB(repository.WithPath(path))
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.Get(&n,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('contact_messages', 'status_checks')`))
	return n
}

func TestMigrateCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate.db")
	t.Setenv("STORE_DRIVER", repository.DriverSqlite)
	t.Setenv("DATABASE_URL", path)

	require.NoError(t, execute(t))
	assert.Equal(t, 2, countTables(t, path))

	require.NoError(t, execute(t, "status"))

	require.NoError(t, execute(t, "reset"))
	assert.Equal(t, 0, countTables(t, path))

	require.NoError(t, execute(t, "fresh"))
	assert.Equal(t, 2, countTables(t, path))

	require.NoError(t, execute(t, "down"))
	assert.Equal(t, 0, countTables(t, path))
}

func TestMigrateCommands_RejectsArgs(t *testing.T) {
	assert.Error(t, execute(t, "up", "extra"))
}
