package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSqliteDB_Memory_Defaults(t *testing.T) {
	database, err := NewSqliteDB()
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY, v TEXT);")
	require.NoError(t, err)
	assert.Equal(t, 1, database.Stats().MaxOpenConnections)
}

// An in-memory database ignores a larger connection limit.
func TestNewSqliteDB_Memory_SingleConnection(t *testing.T) {
	database, err := NewSqliteDB(WithMaxOpenConns(8))
	require.NoError(t, err)
	defer database.Close()

	assert.Equal(t, 1, database.Stats().MaxOpenConnections)
}

func TestNewSqliteDB_File_CreatesParent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "frontier.db")

	database, err := NewSqliteDB(WithPath(dbPath), WithMaxOpenConns(4))
	require.NoError(t, err)
	defer database.Close()

	assert.DirExists(t, filepath.Dir(dbPath))
	assert.FileExists(t, dbPath)
	assert.Equal(t, 4, database.Stats().MaxOpenConnections)
}

func TestNewSqliteDB_CustomPragmas(t *testing.T) {
	database, err := NewSqliteDB(WithPragmas("PRAGMA foreign_keys=ON;"))
	require.NoError(t, err)
	defer database.Close()

	var on int
	require.NoError(t, database.Get(&on, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, on)
}

func TestNewSqliteDB_BadPragmas(t *testing.T) {
	_, err := NewSqliteDB(WithPragmas("THIS IS NOT SQL;"))
	assert.Error(t, err)
}
