package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a recorded sampling run
type Run struct {
	ID           uuid.UUID  `json:"id"`
	DataDir      string     `json:"data_dir"`
	TargetCount  int        `json:"target_count"`
	CorpusFiles  int        `json:"corpus_files"`
	SampledFiles int        `json:"sampled_files"`
	Eligible     int        `json:"eligible"`
	Selected     int        `json:"selected"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// ArtifactStep constants for known artifact types
const (
	StepSelection = "selection"
	StepIDList    = "id_list"
	StepReport    = "report"
	StepReadme    = "readme"
)

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
