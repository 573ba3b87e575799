package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fairpath/internal/types"
)

func TestRecommendCommand_MissingProfileFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	catalogPath := filepath.Join("..", "..", "testdata", "valid", "career_catalog.json")

	cmd := exec.Command(binaryPath, "recommend", "--catalog", catalogPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestRecommendCommand_RejectsDemographicProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	catalogPath := filepath.Join("..", "..", "testdata", "valid", "career_catalog.json")
	profilePath := filepath.Join("..", "..", "testdata", "invalid", "profile_with_age.json")

	cmd := exec.Command(binaryPath, "recommend", "--catalog", catalogPath, "--profile", profilePath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "profile rejected")
}

func TestRecommendCommand_ValidInput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	catalogPath := filepath.Join("..", "..", "testdata", "valid", "career_catalog.json")
	profilePath := filepath.Join("..", "..", "testdata", "valid", "user_profile.json")
	outputFile := filepath.Join(t.TempDir(), "recommendations.json")

	cmd := exec.Command(binaryPath, "recommend",
		"--catalog", catalogPath,
		"--profile", profilePath,
		"--out", outputFile,
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", output)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var set types.RecommendationSet
	require.NoError(t, json.Unmarshal(data, &set))

	assert.GreaterOrEqual(t, set.TotalCount, 3, "at least the minimum recommendation count")
	assert.Equal(t, types.MethodBaseline, set.Method, "no model configured, baseline must answer")
	for _, rec := range set.Recommendations {
		assert.NotEmpty(t, rec.Explanation.WhyPoints, "every recommendation carries an explanation")
	}
}
