package db

import (
	"context"
	"fmt"
)

// schemaStatements create the sampling tables when they do not exist yet.
// gen_random_uuid() needs PostgreSQL 13 or the pgcrypto extension.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sampling_runs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		data_dir TEXT NOT NULL,
		target_count INT NOT NULL,
		corpus_files INT NOT NULL DEFAULT 0,
		sampled_files INT NOT NULL DEFAULT 0,
		eligible INT NOT NULL DEFAULT 0,
		selected INT NOT NULL DEFAULT 0,
		status VARCHAR(50) NOT NULL DEFAULT 'running',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS sampling_artifacts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		run_id UUID NOT NULL REFERENCES sampling_runs(id) ON DELETE CASCADE,
		step VARCHAR(100) NOT NULL,
		content JSONB,
		text_content TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (run_id, step)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sampling_runs_created_at
		ON sampling_runs (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_sampling_artifacts_run_id
		ON sampling_artifacts (run_id)`,
}

// EnsureSchema creates the sampling tables and indexes if missing. Safe to
// call on every run.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
