// Package config loads solreport run configuration.
//
// A run config is a YAML file naming the inputs of a report run. It is
// decoded strictly (unknown keys are errors) and then checked against the
// embedded CUE schema, which constrains enumerated fields such as the output
// format and name map kind. Command-line flags override file values.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Name map kinds.
const (
	NameMapText   = "text"
	NameMapSQLite = "sqlite"
)

// Config describes one report run.
type Config struct {
	// NameMap is the path of the name map source.
	NameMap string `yaml:"name_map" json:"name_map,omitempty"`

	// NameMapKind selects how NameMap is read: "text" or "sqlite".
	NameMapKind string `yaml:"name_map_kind" json:"name_map_kind,omitempty"`

	// Solution is the solver decision file.
	Solution string `yaml:"solution" json:"solution,omitempty"`

	// Prefix is prepended to the companion file names.
	Prefix string `yaml:"prefix" json:"prefix,omitempty"`

	// Format is the report output format: "text" or "json".
	Format string `yaml:"format" json:"format,omitempty"`

	Parallel bool `yaml:"parallel" json:"parallel,omitempty"`
	Verbose  bool `yaml:"verbose" json:"verbose,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		NameMapKind: NameMapText,
		Format:      "text",
	}
}

// Load reads and validates a YAML config file. Fields the file leaves empty
// take their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes and validates YAML config data. source names data in errors.
func Parse(data []byte, source string) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", source, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", source, err)
	}

	def := Default()
	if cfg.NameMapKind == "" {
		cfg.NameMapKind = def.NameMapKind
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	return cfg, nil
}

// Validate checks c against the embedded CUE schema.
func (c *Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %s", cueerrors.Details(err, nil))
	}
	return nil
}
