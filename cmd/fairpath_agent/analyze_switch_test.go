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

func TestAnalyzeSwitchCommand_MissingFlags(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze-switch", "--from", "15-1252.00")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestAnalyzeSwitchCommand_UnknownCareer(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	catalogPath := filepath.Join("..", "..", "testdata", "valid", "career_catalog.json")

	cmd := exec.Command(binaryPath, "analyze-switch",
		"--catalog", catalogPath,
		"--from", "15-1252.00",
		"--to", "99-9999.00",
	)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "not found")
}

func TestAnalyzeSwitchCommand_ValidInput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	catalogPath := filepath.Join("..", "..", "testdata", "valid", "career_catalog.json")
	outputFile := filepath.Join(t.TempDir(), "switch.json")

	cmd := exec.Command(binaryPath, "analyze-switch",
		"--catalog", catalogPath,
		"--from", "15-1252.00",
		"--to", "15-2051.00",
		"--out", outputFile,
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", output)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var analysis types.SwitchAnalysis
	require.NoError(t, json.Unmarshal(data, &analysis))

	assert.Equal(t, "15-1252.00", analysis.SourceCareer.CareerID)
	assert.Equal(t, "15-2051.00", analysis.TargetCareer.CareerID)
	assert.Greater(t, analysis.SkillOverlap.OverlapPercentage, 0.0)
	assert.NotEmpty(t, analysis.Difficulty)
	assert.NotEmpty(t, analysis.TransitionTime.Range)
}
