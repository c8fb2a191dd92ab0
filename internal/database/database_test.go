package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndMigrate(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	// Migrations are idempotent.
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "tasks"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db))

	_, err = db.Exec("INSERT INTO tasks(name, date, user_id) VALUES('x', 'January 05, 2025', 99)")
	assert.Error(t, err, "task with missing owner must be rejected")
}
