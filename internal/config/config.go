package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/carebalance/internal/classify"
	"github.com/gyeh/carebalance/internal/model"
)

// Config holds all runtime configuration for a carebalance run.
type Config struct {
	LogFormat string // "text" or "json"
	LogLevel  string

	InputPath string // YAML snapshot for evaluate
	Format    string // "text" or "json" output for evaluate
	Copy      bool   // copy the report to the clipboard

	BatchIn  string // Parquet snapshots for batch
	BatchOut string // Parquet results for batch

	Input model.Input
}

// New returns a Config whose Input is the blank snapshot.
func New() Config {
	return Config{Input: *model.NewInput()}
}

// LoadFromFile reads a YAML snapshot into Input. Fields missing from the
// file keep their current values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c.Input); err != nil {
		return fmt.Errorf("parse snapshot file: %w", err)
	}
	return nil
}

// LoadWithFlags loads the snapshot file and then re-applies every flag that
// was set explicitly, so the command line overrides the file.
func (c *Config) LoadWithFlags(path string, flags *pflag.FlagSet) error {
	changed := make(map[string]string)
	flags.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})

	if err := c.LoadFromFile(path); err != nil {
		return err
	}

	for name, val := range changed {
		if err := flags.Set(name, val); err != nil {
			return fmt.Errorf("reapply flag --%s: %w", name, err)
		}
	}
	return nil
}

// Validate checks the enumerated fields of Input and the output format.
func (c *Config) Validate() error {
	if err := classify.ValidateInput(&c.Input); err != nil {
		return err
	}
	if c.Format != "" && c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("--format must be text or json, got %q", c.Format)
	}
	return nil
}

// ValidateBatch checks the batch file paths.
func (c *Config) ValidateBatch() error {
	if c.BatchIn == "" {
		return fmt.Errorf("--in is required")
	}
	if _, err := os.Stat(c.BatchIn); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if c.BatchOut == "" {
		return fmt.Errorf("--out is required")
	}
	return nil
}
