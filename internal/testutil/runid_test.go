package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedRunIDs(t *testing.T) {
	gen := NewFixedRunIDs("run-1", "run-2")
	assert.Equal(t, "run-1", gen.Next())
	assert.Equal(t, "run-2", gen.Next())
	assert.Panics(t, func() { gen.Next() })
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	WriteFiles(t, dir, map[string]string{
		"a.txt":        "1 2\n",
		"nested/b.txt": "3\n",
	})

	data, err := os.ReadFile(filepath.Join(dir, "nested", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "3\n", string(data))
}
