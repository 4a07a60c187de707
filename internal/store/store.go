// Package store persists the pipeline run ledger: one row per pipeline
// invocation with per-stage outcomes. The ledger is observability only —
// the corpus and alert history files remain the canonical data hand-off
// between stages.
package store

import (
	"context"

	"github.com/sells-group/feedback-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the run-ledger persistence interface.
type Store interface {
	CreateRun(ctx context.Context) (*model.PipelineRun, error)
	UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error
	UpdateRunResult(ctx context.Context, runID string, result *model.RunResult) error
	GetRun(ctx context.Context, runID string) (*model.PipelineRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.PipelineRun, error)

	Migrate(ctx context.Context) error
	Close() error
}
