package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFull(t *testing.T) {
	data := []byte(`
name_map: names.db
name_map_kind: sqlite
solution: out/solution.txt
prefix: params/run1_
format: json
parallel: true
verbose: true
`)
	cfg, err := Parse(data, "run.yaml")
	require.NoError(t, err)
	assert.Equal(t, &Config{
		NameMap:     "names.db",
		NameMapKind: NameMapSQLite,
		Solution:    "out/solution.txt",
		Prefix:      "params/run1_",
		Format:      "json",
		Parallel:    true,
		Verbose:     true,
	}, cfg)
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("solution: s.txt\n"), "run.yaml")
	require.NoError(t, err)
	assert.Equal(t, NameMapText, cfg.NameMapKind)
	assert.Equal(t, "text", cfg.Format)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil, "run.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown format", "format: xml\n"},
		{"unknown kind", "name_map_kind: csv\n"},
		{"numeric format", "format: 3\n"},
		{"unknown key", "solver: glpk\n"},
		{"wrong type", "parallel: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "run.yaml")
			assert.Error(t, err)
		})
	}
}

func TestValidateMessageNamesField(t *testing.T) {
	cfg := &Config{Format: "xml"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefix: p_\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "p_", cfg.Prefix)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
