package model

import "time"

// RunStatus represents the current state of a pipeline run.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// StageStatus represents the outcome of a single pipeline stage.
type StageStatus string

const (
	StageStatusComplete StageStatus = "complete"
	StageStatusSkipped  StageStatus = "skipped"
	StageStatusFailed   StageStatus = "failed"
)

// StageResult records the outcome of one stage within a run.
type StageResult struct {
	Name       string      `json:"name"`
	Status     StageStatus `json:"status"`
	Records    int         `json:"records"`
	Alerts     int         `json:"alerts,omitempty"`
	DurationMS int64       `json:"duration_ms"`
	Error      string      `json:"error,omitempty"`
}

// RunResult holds the final outcome of a pipeline run.
type RunResult struct {
	Enriched  int           `json:"enriched"`
	NewAlerts int           `json:"new_alerts"`
	Stages    []StageResult `json:"stages"`
	Error     string        `json:"error,omitempty"`
}

// PipelineRun is one recorded invocation of the enrichment/alerting pipeline.
type PipelineRun struct {
	ID        string     `json:"id"`
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
