// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/docket-sampler/internal/selection"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	DataDir   string `json:"data_dir,omitempty"`   // Directory of case JSON files to sample from
	OutDir    string `json:"out_dir,omitempty"`    // Directory for selection artifacts
	DataRoot  string `json:"data_root,omitempty"`  // Directory containing the recap/ PDF tree
	SampleDir string `json:"sample_dir,omitempty"` // Destination for the materialized sample tree

	// Selection tunables
	TargetCount      int   `json:"target_count,omitempty"`       // How many cases to select
	MinAvailableDocs int   `json:"min_available_docs,omitempty"` // Inclusive lower bound on available documents
	MaxAvailableDocs int   `json:"max_available_docs,omitempty"` // Inclusive upper bound on available documents
	MinFileSize      int64 `json:"min_file_size,omitempty"`      // Inclusive lower bound on case file size in bytes
	MaxFileSize      int64 `json:"max_file_size,omitempty"`      // Inclusive upper bound on case file size in bytes
	SampleStride     int   `json:"sample_stride,omitempty"`      // Keep every k-th corpus file

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for run history
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.TargetCount < 0 {
		return fmt.Errorf("config error: 'target_count' must be non-negative")
	}
	if c.MinAvailableDocs < 0 {
		return fmt.Errorf("config error: 'min_available_docs' must be non-negative")
	}
	if c.MinFileSize < 0 {
		return fmt.Errorf("config error: 'min_file_size' must be non-negative")
	}
	if c.SampleStride < 0 {
		return fmt.Errorf("config error: 'sample_stride' must be non-negative")
	}

	// Validate directory paths exist (if specified)
	if c.DataDir != "" {
		if _, err := os.Stat(c.DataDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: data directory not found: %s", c.DataDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.DataRoot == "" {
		result.DataRoot = defaults.DataRoot
	}
	if result.SampleDir == "" {
		result.SampleDir = defaults.SampleDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.TargetCount == 0 {
		result.TargetCount = defaults.TargetCount
	}
	if result.MinAvailableDocs == 0 {
		result.MinAvailableDocs = defaults.MinAvailableDocs
	}
	if result.MaxAvailableDocs == 0 {
		result.MaxAvailableDocs = defaults.MaxAvailableDocs
	}
	if result.MinFileSize == 0 {
		result.MinFileSize = defaults.MinFileSize
	}
	if result.MaxFileSize == 0 {
		result.MaxFileSize = defaults.MaxFileSize
	}
	if result.SampleStride == 0 {
		result.SampleStride = defaults.SampleStride
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultConfig returns the standard configuration: selection criteria
// defaults plus the conventional directory layout.
func DefaultConfig() Config {
	return Config{
		DataDir:          filepath.Join("data", "docket-data"),
		OutDir:           ".",
		DataRoot:         filepath.Join("data", "sata"),
		SampleDir:        "sample-data",
		TargetCount:      selection.DefaultTargetCount,
		MinAvailableDocs: selection.DefaultMinAvailableDocs,
		MaxAvailableDocs: selection.DefaultMaxAvailableDocs,
		MinFileSize:      selection.DefaultMinFileSize,
		MaxFileSize:      selection.DefaultMaxFileSize,
		SampleStride:     selection.DefaultSampleStride,
	}
}

// Criteria converts the merged configuration into selection criteria.
func (c *Config) Criteria() selection.Criteria {
	return selection.Criteria{
		TargetCount:      c.TargetCount,
		MinAvailableDocs: c.MinAvailableDocs,
		MaxAvailableDocs: c.MaxAvailableDocs,
		MinFileSize:      c.MinFileSize,
		MaxFileSize:      c.MaxFileSize,
		SampleStride:     c.SampleStride,
	}
}
