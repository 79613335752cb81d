// Package config reads and writes bilanco.yaml. Environment variables with
// the BILANCO_ prefix override file values, and a .env file next to the
// process is picked up when present.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/natefinch/atomic"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "bilanco.yaml"

// Config represents the top-level bilanco.yaml configuration.
type Config struct {
	Company CompanyConfig `yaml:"company"`
	Checks  ChecksConfig  `yaml:"checks"`
	Store   StoreConfig   `yaml:"store"`
	Schema  SchemaConfig  `yaml:"schema"`
}

// CompanyConfig identifies the reporting entity.
type CompanyConfig struct {
	Name string `yaml:"name"`
}

// ChecksConfig controls balance and metadata validation.
type ChecksConfig struct {
	Tolerance     string `yaml:"tolerance"`       // decimal string, e.g. "0.01"
	MaxFutureDays int    `yaml:"max_future_days"` // how far a report date may lie ahead
}

// StoreConfig locates the draft and archive files.
type StoreConfig struct {
	Dir string `yaml:"dir"`
}

// SchemaConfig points at the chart file. An empty file name means the
// built-in chart.
type SchemaConfig struct {
	File string `yaml:"file,omitempty"`
}

// Tolerance parses the configured balance tolerance.
func (c *Config) Tolerance() (decimal.Decimal, error) {
	raw := c.Checks.Tolerance
	if raw == "" {
		raw = "0.01"
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid tolerance %q: %w", raw, err)
	}
	return d, nil
}

// Load reads a bilanco.yaml file from disk and applies environment
// overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(companyName string) *Config {
	return &Config{
		Company: CompanyConfig{Name: companyName},
		Checks: ChecksConfig{
			Tolerance:     "0.01",
			MaxFutureDays: 0,
		},
		Store:  StoreConfig{Dir: "."},
		Schema: SchemaConfig{File: "schema.yaml"},
	}
}

// applyEnv overlays BILANCO_* environment variables on cfg.
func applyEnv(cfg *Config) error {
	// Not an error when there is no .env.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BILANCO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if s := v.GetString("company.name"); s != "" {
		cfg.Company.Name = s
	}
	if s := v.GetString("checks.tolerance"); s != "" {
		cfg.Checks.Tolerance = s
	}
	if s := v.GetString("checks.max_future_days"); s != "" {
		days, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid BILANCO_CHECKS_MAX_FUTURE_DAYS %q: %w", s, err)
		}
		cfg.Checks.MaxFutureDays = days
	}
	if s := v.GetString("store.dir"); s != "" {
		cfg.Store.Dir = s
	}
	if s := v.GetString("schema.file"); s != "" {
		cfg.Schema.File = s
	}
	return nil
}
