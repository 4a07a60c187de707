// Package pipeline sequences the batch stages: enrichment over the input
// corpus, then alert detection over the enriched corpus. Stages hand off
// through files at well-known locations; each stage runs to completion
// before the next starts and a missing input skips a stage rather than
// failing the run.
package pipeline

import (
	"context"
	"errors"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/feedback-cli/internal/alert"
	"github.com/sells-group/feedback-cli/internal/corpus"
	"github.com/sells-group/feedback-cli/internal/enrich"
	"github.com/sells-group/feedback-cli/internal/model"
)

// Paths holds the corpus file locations for one pipeline invocation.
type Paths struct {
	Corpus   string // sentiment-labeled input
	Enriched string // enriched corpus destination
	Alerts   string // alert history
}

// Pipeline runs the enrichment and alerting stages.
type Pipeline struct {
	engine   *enrich.Engine
	detector *alert.Detector
	paths    Paths
	readOpts corpus.ReadOptions
}

// New builds a pipeline from its stage components.
func New(engine *enrich.Engine, detector *alert.Detector, paths Paths, readOpts corpus.ReadOptions) *Pipeline {
	return &Pipeline{engine: engine, detector: detector, paths: paths, readOpts: readOpts}
}

// EnrichOptions adjusts a single enrichment invocation.
type EnrichOptions struct {
	// Limit caps the number of records processed; 0 means no cap.
	Limit int
	// DryRun computes enrichment but does not write the enriched corpus.
	DryRun bool
}

// Enrich loads the input corpus, derives the five classification dimensions
// per record, and overwrites the enriched corpus. A missing input corpus is
// a skip, not a failure.
func (p *Pipeline) Enrich(ctx context.Context, opts EnrichOptions) (model.StageResult, error) {
	start := time.Now()
	res := model.StageResult{Name: "enrich"}

	if err := ctx.Err(); err != nil {
		res.Status = model.StageStatusFailed
		res.Error = err.Error()
		return res, err
	}

	records, err := corpus.ReadCorpus(p.paths.Corpus, p.readOpts)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			zap.L().Warn("input corpus not found, skipping enrichment",
				zap.String("path", p.paths.Corpus))
			res.Status = model.StageStatusSkipped
			res.DurationMS = time.Since(start).Milliseconds()
			return res, nil
		}
		res.Status = model.StageStatusFailed
		res.Error = err.Error()
		res.DurationMS = time.Since(start).Milliseconds()
		return res, err
	}

	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}

	enriched := p.engine.EnrichAll(records)
	if opts.DryRun {
		zap.L().Info("dry run, enriched corpus not written",
			zap.String("path", p.paths.Enriched),
			zap.Int("records", len(enriched)))
		res.Status = model.StageStatusComplete
		res.Records = len(enriched)
		res.DurationMS = time.Since(start).Milliseconds()
		return res, nil
	}
	if err := corpus.WriteEnriched(enriched, p.paths.Enriched); err != nil {
		res.Status = model.StageStatusFailed
		res.Error = err.Error()
		res.DurationMS = time.Since(start).Milliseconds()
		return res, err
	}

	res.Status = model.StageStatusComplete
	res.Records = len(enriched)
	res.DurationMS = time.Since(start).Milliseconds()
	zap.L().Info("enriched corpus written",
		zap.String("path", p.paths.Enriched),
		zap.Int("records", len(enriched)))
	return res, nil
}

// Alerts scans the enriched corpus for the three risk conditions and merges
// the results into the alert history. A missing enriched corpus is a skip.
func (p *Pipeline) Alerts(ctx context.Context, now time.Time) (model.StageResult, error) {
	start := time.Now()
	res := model.StageResult{Name: "alerts"}

	if err := ctx.Err(); err != nil {
		res.Status = model.StageStatusFailed
		res.Error = err.Error()
		return res, err
	}

	enriched, err := corpus.ReadEnriched(p.paths.Enriched, p.readOpts)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			zap.L().Warn("enriched corpus not found, skipping alert detection",
				zap.String("path", p.paths.Enriched))
			res.Status = model.StageStatusSkipped
			res.DurationMS = time.Since(start).Milliseconds()
			return res, nil
		}
		res.Status = model.StageStatusFailed
		res.Error = err.Error()
		res.DurationMS = time.Since(start).Milliseconds()
		return res, err
	}

	alerts := p.detector.Detect(enriched, now)
	added, total, err := alert.MergeHistory(alerts, p.paths.Alerts)
	if err != nil {
		res.Status = model.StageStatusFailed
		res.Error = err.Error()
		res.DurationMS = time.Since(start).Milliseconds()
		return res, err
	}

	res.Status = model.StageStatusComplete
	res.Records = len(enriched)
	res.Alerts = added
	res.DurationMS = time.Since(start).Milliseconds()
	zap.L().Info("alert detection complete",
		zap.Int("detected", len(alerts)),
		zap.Int("new", added),
		zap.Int("history_total", total))
	return res, nil
}

// Run executes enrich then alerts sequentially. A skipped enrich stage does
// not stop alert detection: the previous enriched corpus, if any, is still a
// valid detection input.
func (p *Pipeline) Run(ctx context.Context) (*model.RunResult, error) {
	result := &model.RunResult{}

	enrichRes, err := p.Enrich(ctx, EnrichOptions{})
	result.Stages = append(result.Stages, enrichRes)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	if enrichRes.Status == model.StageStatusComplete {
		result.Enriched = enrichRes.Records
	}

	alertsRes, err := p.Alerts(ctx, time.Now())
	result.Stages = append(result.Stages, alertsRes)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}
	result.NewAlerts = alertsRes.Alerts

	return result, nil
}
