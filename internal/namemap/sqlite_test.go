package namemap

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createNameDB(t *testing.T, entries map[int]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE columns (idx INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)
	for id, name := range entries {
		_, err := db.Exec(`INSERT INTO columns (idx, name) VALUES (?, ?)`, id, name)
		require.NoError(t, err)
	}
	return path
}

func TestOpenSQLite(t *testing.T) {
	path := createNameDB(t, map[int]string{0: "alice", 1: "bob", 5: "carol"})

	tbl, err := OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	name, ok := tbl.Name(5)
	require.True(t, ok)
	assert.Equal(t, "carol", name)

	id, ok := tbl.Index("bob")
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestOpenSQLiteDuplicateName(t *testing.T) {
	path := createNameDB(t, map[int]string{0: "alice", 1: "alice"})

	_, err := OpenSQLite(context.Background(), path)
	require.Error(t, err)
	assert.True(t, IsMapError(err, ErrCodeDuplicateName))
}

func TestOpenSQLiteMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (x INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = OpenSQLite(context.Background(), path)
	assert.Error(t, err)
}

func TestOpenSQLiteMissingFile(t *testing.T) {
	_, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}
