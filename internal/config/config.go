// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Catalog string `json:"catalog,omitempty"` // Path to the career catalog JSON file
	Model   string `json:"model,omitempty"`   // Path to the trained model artifact (optional)

	// Recommendation behavior
	TopN         int  `json:"top_n,omitempty"`         // Number of recommendations to return
	UseML        bool `json:"use_ml,omitempty"`        // Prefer the trained model over the baseline
	DisableFuzzy bool `json:"disable_fuzzy,omitempty"` // Require exact skill-name matches

	// Guardrails
	ExtraDenyTerms []string `json:"extra_deny_terms,omitempty"` // Deployment-specific demographic terms to reject

	// Infrastructure
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the feedback store
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// Environment variable names read by FromEnv.
const (
	EnvCatalog     = "FAIRPATH_CATALOG"
	EnvModel       = "FAIRPATH_MODEL"
	EnvDatabaseURL = "DATABASE_URL"
	EnvTopN        = "FAIRPATH_TOP_N"
)

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

// FromEnv returns a Config populated from environment variables. Unset
// variables leave zero values so the result can be merged under file
// and flag values.
func FromEnv() Config {
	cfg := Config{
		Catalog:     os.Getenv(EnvCatalog),
		Model:       os.Getenv(EnvModel),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
	}
	if v := os.Getenv(EnvTopN); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopN = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	if c.Model != "" {
		if _, err := os.Stat(c.Model); os.IsNotExist(err) {
			return fmt.Errorf("config error: model file not found: %s", c.Model)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}

	if len(result.ExtraDenyTerms) == 0 {
		result.ExtraDenyTerms = defaults.ExtraDenyTerms
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
