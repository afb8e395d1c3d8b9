package scanlog

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/oddhash/oddhash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateHistory_NoneBackend(t *testing.T) {
	err := MigrateHistory(schema.NoneBackend, "", -1)
	assert.Error(t, err)
}

func TestMigrateHistory_UnsupportedBackend(t *testing.T) {
	err := MigrateHistory(schema.DatabaseBackend("oracle"), "", -1)
	assert.Error(t, err)
}

func TestMigrateHistory_SQLiteUpAndDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	// Migrate to latest version
	err := MigrateHistory(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	// Table should exist after migration
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", scanRunsTable).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, scanRunsTable, name)
	require.NoError(t, db.Close())

	// Running again is a no-op
	err = MigrateHistory(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	// Roll back all migrations
	err = MigrateHistory(schema.SQLiteBackend, dbPath, 0)
	require.NoError(t, err)

	db, err = sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", scanRunsTable).Scan(&name)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, db.Close())
}
