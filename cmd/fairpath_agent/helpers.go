// Package main implements the fairpath_agent CLI for guardrailed career
// recommendations.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/jonathan/fairpath/internal/catalog"
	"github.com/jonathan/fairpath/internal/config"
	"github.com/jonathan/fairpath/internal/features"
	"github.com/jonathan/fairpath/internal/ranking"
	"github.com/jonathan/fairpath/internal/recommend"
	"github.com/jonathan/fairpath/internal/schemas"
	"github.com/jonathan/fairpath/internal/types"
)

// resolveConfig layers configuration sources: explicit flags win over
// the optional config file, which wins over environment variables.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	merged := flags

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}

	merged = merged.MergeWithDefaults(config.FromEnv())

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadProfile reads a raw user profile from a JSON file. The profile
// has not passed guardrails yet; callers must validate before use.
func loadProfile(path string) (*types.UserProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var profile types.UserProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	return &profile, nil
}

// buildEngine loads the catalog and wires the shared scoring components.
func buildEngine(cfg config.Config, logger zerolog.Logger) (*catalog.Catalog, *features.Space, *recommend.Recommender, error) {
	if cfg.Catalog == "" {
		return nil, nil, nil, fmt.Errorf("no catalog configured: pass --catalog, set %s, or add 'catalog' to the config file", config.EnvCatalog)
	}

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug().Int("careers", cat.Len()).Str("version", cat.Version()).Msg("catalog loaded")

	space := features.NewSpace(cat.SkillVocabulary())
	models := ranking.NewModelLoader(cfg.Model, space, logger)
	rec := recommend.New(cat, space, models, !cfg.DisableFuzzy)

	return cat, space, rec, nil
}

// writeOutput marshals v with indentation and writes it to path, or to
// stdout when path is empty.
func writeOutput(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// validateOutput checks a written output file against its schema when
// one can be located. Output validation is a safety check, not a
// requirement; failures warn and never fail the command.
func validateOutput(schemaRel, outPath string) {
	if outPath == "" {
		return
	}
	schemaPath := schemas.ResolveSchemaPath(schemaRel)
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, outPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: output validation failed: %v\n", err)
	}
}
