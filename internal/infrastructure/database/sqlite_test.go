package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteDB_AppliesSchemaOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	db, err := NewSQLiteDB(path, nil)
	require.NoError(t, err)

	var name string
	require.NoError(t, db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='meeting_records'",
	).Scan(&name))
	assert.Equal(t, "meeting_records", name)
	require.NoError(t, db.Close())

	// reopening finds the schema already applied
	db, err = NewSQLiteDB(path, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
