package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/feedback-cli/internal/alert"
	"github.com/sells-group/feedback-cli/internal/config"
	"github.com/sells-group/feedback-cli/internal/corpus"
	"github.com/sells-group/feedback-cli/internal/enrich"
	"github.com/sells-group/feedback-cli/internal/pipeline"
	"github.com/sells-group/feedback-cli/internal/rules"
	"github.com/sells-group/feedback-cli/internal/store"
)

// loadRules returns the configured rule set, or the built-in defaults when no
// override file is configured.
func loadRules() (rules.Rules, error) {
	if cfg.Rules.File == "" {
		return rules.Default(), nil
	}
	r, err := rules.LoadFile(cfg.Rules.File)
	if err != nil {
		return rules.Rules{}, err
	}
	zap.L().Info("loaded rule set", zap.String("file", cfg.Rules.File))
	return r, nil
}

// newEngine builds the enrichment engine from the configured rules.
func newEngine() (*enrich.Engine, error) {
	r, err := loadRules()
	if err != nil {
		return nil, err
	}
	return enrich.NewEngine(r)
}

// detectorConfig maps the app config onto alert detection thresholds.
func detectorConfig(c config.AlertsConfig) alert.Config {
	return alert.Config{
		NegativeConfidenceThreshold: c.NegativeConfidenceThreshold,
		SpikeWindow:                 c.SpikeWindow,
		SpikeMultiplier:             c.SpikeMultiplier,
		BaselineFloor:               c.BaselineFloor,
		DedupeBucket:                c.DedupeBucket,
	}
}

// newPipeline wires the full pipeline from config, with optional path
// overrides from command flags.
func newPipeline(corpusPath, enrichedPath, alertsPath string) (*pipeline.Pipeline, error) {
	engine, err := newEngine()
	if err != nil {
		return nil, err
	}

	paths := pipeline.Paths{
		Corpus:   cfg.Data.Corpus,
		Enriched: cfg.Data.Enriched,
		Alerts:   cfg.Data.Alerts,
	}
	if corpusPath != "" {
		paths.Corpus = corpusPath
	}
	if enrichedPath != "" {
		paths.Enriched = enrichedPath
	}
	if alertsPath != "" {
		paths.Alerts = alertsPath
	}

	detector := alert.NewDetector(detectorConfig(cfg.Alerts))
	readOpts := corpus.ReadOptions{Charset: cfg.Data.Charset}
	return pipeline.New(engine, detector, paths, readOpts), nil
}

// initStore opens the configured run-ledger backend. Returns (nil, nil) when
// the ledger is disabled.
func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "", "none", "off":
		return nil, nil
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "feedback.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

