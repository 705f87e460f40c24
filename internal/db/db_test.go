package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactStepConstants(t *testing.T) {
	// Verify step constants are defined
	steps := []string{
		StepSelection,
		StepIDList,
		StepReport,
		StepReadme,
	}

	for _, step := range steps {
		assert.NotEmpty(t, step, "step constant should not be empty")
	}
}

func TestStatusConstants(t *testing.T) {
	assert.Equal(t, "running", StatusRunning)
	assert.Equal(t, "completed", StatusCompleted)
	assert.Equal(t, "failed", StatusFailed)
}

func TestRunType(t *testing.T) {
	// Verify Run struct can be instantiated
	run := Run{
		DataDir:     "data/docket-data",
		TargetCount: 10,
		Status:      StatusRunning,
	}

	assert.Equal(t, "data/docket-data", run.DataDir)
	assert.Equal(t, 10, run.TargetCount)
	assert.Equal(t, "running", run.Status)
	assert.Nil(t, run.CompletedAt)
}

func TestSchemaStatements_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, schemaStatements)
	for _, stmt := range schemaStatements {
		assert.Contains(t, stmt, "IF NOT EXISTS")
	}
}
