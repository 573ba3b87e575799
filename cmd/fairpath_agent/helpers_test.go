package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fairpath/internal/config"
	"github.com/jonathan/fairpath/internal/guardrails"
	"github.com/jonathan/fairpath/internal/recommend"
	"github.com/jonathan/fairpath/internal/schemas"
	"github.com/jonathan/fairpath/internal/transition"
)

func TestResolveConfig_FlagsWinOverFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	catalogPath := filepath.Join("..", "..", "testdata", "valid", "career_catalog.json")

	fileContent := `{"catalog": "` + catalogPath + `", "top_n": 10}`
	require.NoError(t, os.WriteFile(configPath, []byte(fileContent), 0644))

	cfg, err := resolveConfig(configPath, config.Config{TopN: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.TopN, "flag value should win")
	assert.Equal(t, catalogPath, cfg.Catalog, "file value fills missing flag")
}

func TestResolveConfig_InvalidFile(t *testing.T) {
	_, err := resolveConfig("/nonexistent/config.json", config.Config{})
	assert.Error(t, err)
}

func TestResolveConfig_ValidationFailure(t *testing.T) {
	_, err := resolveConfig("", config.Config{Catalog: "/nonexistent/catalog.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")
}

func TestLoadProfile_Valid(t *testing.T) {
	profilePath := filepath.Join("..", "..", "testdata", "valid", "user_profile.json")

	profile, err := loadProfile(profilePath)
	require.NoError(t, err)

	assert.Equal(t, []string{"Programming", "Databases", "Problem Solving"}, profile.Skills)
	assert.Equal(t, 4.5, profile.SkillImportance["Programming"])
	assert.Equal(t, 6.0, profile.Interests["Investigative"])
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := loadProfile("/nonexistent/profile.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile file")
}

func TestLoadProfile_MalformedJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte("{ not json }"), 0644))

	_, err := loadProfile(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal profile JSON")
}

func TestWriteOutput_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "nested", "dir", "out.json")

	err := writeOutput(outPath, map[string]int{"answer": 42})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 42, decoded["answer"])
}

func TestWriteOutput_RecommendationSetMatchesSchema(t *testing.T) {
	logger := newLogger(false)
	catalogPath := filepath.Join("..", "..", "testdata", "valid", "career_catalog.json")

	_, _, rec, err := buildEngine(config.Config{Catalog: catalogPath}, logger)
	require.NoError(t, err)

	profile, err := loadProfile(filepath.Join("..", "..", "testdata", "valid", "user_profile.json"))
	require.NoError(t, err)

	set, err := rec.Recommend(context.Background(), profile, recommend.Options{TopN: 3})
	require.NoError(t, err)

	outPath := filepath.Join(t.TempDir(), "recommendations.json")
	require.NoError(t, writeOutput(outPath, set))

	schemaPath := schemas.ResolveSchemaPath("schemas/recommendation_set.schema.json")
	require.NotEmpty(t, schemaPath)
	assert.NoError(t, schemas.ValidateJSON(schemaPath, outPath),
		"real command output must conform to its published schema")
}

func TestWriteOutput_SwitchAnalysisMatchesSchema(t *testing.T) {
	logger := newLogger(false)
	catalogPath := filepath.Join("..", "..", "testdata", "valid", "career_catalog.json")

	cat, space, _, err := buildEngine(config.Config{Catalog: catalogPath}, logger)
	require.NoError(t, err)

	source, err := cat.ByID("15-1252.00")
	require.NoError(t, err)
	target, err := cat.ByID("29-1141.00")
	require.NoError(t, err)

	analysis := transition.NewAnalyzer(space).AnalyzeSwitch(source, target)

	outPath := filepath.Join(t.TempDir(), "switch.json")
	require.NoError(t, writeOutput(outPath, analysis))

	schemaPath := schemas.ResolveSchemaPath("schemas/switch_analysis.schema.json")
	require.NotEmpty(t, schemaPath)
	assert.NoError(t, schemas.ValidateJSON(schemaPath, outPath))
}

func TestCustomDenyTerms(t *testing.T) {
	assert.Nil(t, customDenyTerms(nil))

	extra := customDenyTerms([]string{"zip code", "neighborhood"})
	assert.Equal(t, map[string]string{
		"zip code":     guardrails.CategoryCustom,
		"neighborhood": guardrails.CategoryCustom,
	}, extra)
}

func TestBuildEngine_RequiresCatalog(t *testing.T) {
	logger := newLogger(false)
	_, _, _, err := buildEngine(config.Config{}, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog configured")
}

func TestBuildEngine_LoadsTestCatalog(t *testing.T) {
	logger := newLogger(false)
	catalogPath := filepath.Join("..", "..", "testdata", "valid", "career_catalog.json")

	cat, space, rec, err := buildEngine(config.Config{Catalog: catalogPath}, logger)
	require.NoError(t, err)

	assert.Equal(t, 4, cat.Len())
	assert.NotNil(t, rec)
	// 10 distinct skills + 6 interests + 6 work values + 3 outlook axes
	assert.Equal(t, 25, space.Size())
}
