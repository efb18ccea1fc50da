package namemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewBidirectional(t *testing.T) {
	tbl, err := New(map[int]string{0: "alice", 1: "bob"})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	id, ok := tbl.Index("bob")
	assert.True(t, ok)
	assert.Equal(t, 1, id)

	name, ok := tbl.Name(0)
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	_, ok = tbl.Index("carol")
	assert.False(t, ok)
	_, ok = tbl.Name(7)
	assert.False(t, ok)
}

func TestNewRejectsDuplicateName(t *testing.T) {
	_, err := New(map[int]string{0: "alice", 1: "alice"})
	require.Error(t, err)
	assert.True(t, IsMapError(err, ErrCodeDuplicateName))
}

func TestNewRejectsEmptyName(t *testing.T) {
	_, err := New(map[int]string{0: ""})
	require.Error(t, err)
	assert.True(t, IsMapError(err, ErrCodeBadEntry))
}

func TestNFCNormalization(t *testing.T) {
	// "é" precomposed (U+00E9) vs decomposed (e + U+0301).
	tbl, err := New(map[int]string{3: "caf\u00e9"})
	require.NoError(t, err)

	id, ok := tbl.Index("cafe\u0301")
	require.True(t, ok)
	assert.Equal(t, 3, id)
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "names.txt", "# index name\n0 alice\n\n1   bob\n2\tcarol\n")

	tbl, err := LoadText(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	id, ok := tbl.Index("carol")
	require.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestLoadTextErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    MapErrorCode
		line    int
	}{
		{"missing name", "0 alice\n1\n", ErrCodeBadEntry, 2},
		{"extra field", "0 alice smith\n", ErrCodeBadEntry, 1},
		{"bad index", "x alice\n", ErrCodeBadEntry, 1},
		{"duplicate index", "0 alice\n0 bob\n", ErrCodeDuplicateIndex, 2},
		{"duplicate name", "0 alice\n1 alice\n", ErrCodeDuplicateName, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadText(writeFile(t, "names.txt", tt.content))
			require.Error(t, err)
			assert.True(t, IsMapError(err, tt.code), "got %v", err)

			var me *MapError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tt.line, me.Line)
		})
	}
}

func TestLoadTextMissingFile(t *testing.T) {
	_, err := LoadText(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
