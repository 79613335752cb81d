package schema

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/bilanco-dev/bilanco/internal/model"
)

// schemaFile is the on-disk shape of schema.yaml.
type schemaFile struct {
	Aktif *model.Node `yaml:"aktif"`
	Pasif *model.Node `yaml:"pasif"`
}

// Load reads a schema.yaml file from disk. Node kinds may be omitted in the
// file; a node with children is a group.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	var f schemaFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if f.Aktif == nil || f.Pasif == nil {
		return nil, &ConfigError{Reason: "schema file must define aktif and pasif"}
	}
	return New(f.Aktif, f.Pasif)
}

// Save writes the schema to a YAML file. The write is atomic so a crash never
// leaves a half-written schema behind.
func Save(path string, s *Schema) error {
	data, err := yaml.Marshal(schemaFile{Aktif: s.aktif, Pasif: s.pasif})
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}
	return nil
}
