// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config is the CLI configuration loadable from a JSON file. All fields are
// optional; missing values fall back to defaults or CLI flags.
type Config struct {
	// Paths
	Output     string `json:"output,omitempty"`      // Path for the extraction result JSON
	SchemaPath string `json:"schema_path,omitempty"` // Path to the extraction result schema

	// Behavior
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Verbose  bool   `json:"verbose,omitempty"` // Print detailed debug information

	// Limits applied when filling templates
	MaxExperienceEntries int `json:"max_experience_entries,omitempty" validate:"gte=0"`
	MaxSkillEntries      int `json:"max_skill_entries,omitempty" validate:"gte=0"`
}

var validate = validator.New()

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field constraints and that referenced files exist.
// Required fields are not checked here; the CLI enforces those after merging
// flags with config values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			first := fieldErrs[0]
			return fmt.Errorf("config error: field %q fails %q constraint", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.SchemaPath != "" {
		if _, err := os.Stat(c.SchemaPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.SchemaPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a copy of c with zero-valued fields filled from
// defaults. Flag values merged this way keep explicit settings intact.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if result.MaxExperienceEntries == 0 {
		result.MaxExperienceEntries = defaults.MaxExperienceEntries
	}
	if result.MaxSkillEntries == 0 {
		result.MaxSkillEntries = defaults.MaxSkillEntries
	}

	return result
}
