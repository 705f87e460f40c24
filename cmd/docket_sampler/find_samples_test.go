package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpusCase writes a minimal case docket JSON into dir and returns its path.
func writeCorpusCase(t *testing.T, dir string, id int64, court string, availableDocs int) string {
	t.Helper()

	docs := make([]map[string]any, 0, availableDocs)
	for j := 0; j < availableDocs; j++ {
		docs = append(docs, map[string]any{
			"is_available":   true,
			"filepath_local": fmt.Sprintf("recap/gov.uscourts.%s.%d/gov.uscourts.%s.%d.%d.0.pdf", court, id, court, id, j+1),
		})
	}
	record := map[string]any{
		"id":         id,
		"case_name":  fmt.Sprintf("Case %d v. Test", id),
		"court":      court,
		"date_filed": "2018-03-01",
		"docket_entries": []map[string]any{
			{"recap_documents": docs},
		},
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)

	path := filepath.Join(dir, fmt.Sprintf("%d.json", id))
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestFindSamplesCommand_MissingDataDirFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "find-samples")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestFindSamplesCommand_DataDirNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "find-samples", "--data-dir", "/nonexistent/docket-data")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "data directory not found")
}

func TestFindSamplesCommand_InvalidCriteria(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	dataDir := t.TempDir()

	cmd := exec.Command(binaryPath, "find-samples", "--data-dir", dataDir, "--target", "0")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid selection criteria")
}

func TestFindSamplesCommand_WritesArtifacts(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	dataDir := t.TempDir()
	outDir := t.TempDir()

	writeCorpusCase(t, dataDir, 101, "cand", 7)
	writeCorpusCase(t, dataDir, 102, "nysd", 9)
	writeCorpusCase(t, dataDir, 103, "txed", 3)

	cmd := exec.Command(binaryPath, "find-samples",
		"--data-dir", dataDir,
		"--out", outDir,
		"--target", "2",
		"--min-docs", "1",
		"--max-docs", "50",
		"--min-size", "1",
		"--max-size", "1000000",
		"--stride", "1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command output: %s", output)
	assert.Contains(t, string(output), "Step 1/4")
	assert.Contains(t, string(output), "Results saved to")

	selectionPath := filepath.Join(outDir, "selected_samples.json")
	idsPath := filepath.Join(outDir, "sample_ids.txt")
	assert.FileExists(t, selectionPath)
	assert.FileExists(t, idsPath)

	// Ranked by available docs, so case 102 leads the ID list
	ids, err := os.ReadFile(idsPath)
	require.NoError(t, err)
	assert.Equal(t, "102\n101\n", string(ids))
}
