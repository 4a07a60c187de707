// Package alert scans the enriched corpus for high-risk patterns and keeps
// the append-only alert history deduplicated across pipeline runs.
package alert

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/feedback-cli/internal/model"
)

// Config holds the alert detection thresholds.
type Config struct {
	// NegativeConfidenceThreshold is the minimum upstream confidence for a
	// negative record to count as a strong negative.
	NegativeConfidenceThreshold float64
	// SpikeWindow is how far back from detection time the "recent"
	// complaint window reaches.
	SpikeWindow time.Duration
	// SpikeMultiplier is how many times the baseline the recent complaint
	// count must reach to declare a spike.
	SpikeMultiplier float64
	// BaselineFloor substitutes for a zero historical complaint count so
	// small counts still compare. Floored baselines trip easily on new
	// products; that sensitivity is intentional.
	BaselineFloor float64
	// DedupeBucket is the granularity of alert timestamps. Runs within the
	// same bucket produce identical timestamps, which is what lets the
	// history merge collapse repeat alerts from unchanged data.
	DedupeBucket time.Duration
}

// DefaultConfig returns the standard detection thresholds.
func DefaultConfig() Config {
	return Config{
		NegativeConfidenceThreshold: 0.7,
		SpikeWindow:                 24 * time.Hour,
		SpikeMultiplier:             2,
		BaselineFloor:               0.1,
		DedupeBucket:                time.Hour,
	}
}

// Detector evaluates the three risk conditions over an enriched corpus.
type Detector struct {
	cfg Config
}

// NewDetector builds a Detector. Zero-valued thresholds fall back to the
// defaults so a partially specified config stays usable.
func NewDetector(cfg Config) *Detector {
	def := DefaultConfig()
	if cfg.NegativeConfidenceThreshold <= 0 {
		cfg.NegativeConfidenceThreshold = def.NegativeConfidenceThreshold
	}
	if cfg.SpikeWindow <= 0 {
		cfg.SpikeWindow = def.SpikeWindow
	}
	if cfg.SpikeMultiplier <= 0 {
		cfg.SpikeMultiplier = def.SpikeMultiplier
	}
	if cfg.BaselineFloor <= 0 {
		cfg.BaselineFloor = def.BaselineFloor
	}
	if cfg.DedupeBucket <= 0 {
		cfg.DedupeBucket = def.DedupeBucket
	}
	return &Detector{cfg: cfg}
}

// Detect runs the three conditions in order and returns the union of matches.
// A record triggers at most one of the per-record conditions; spike detection
// works over per-product aggregates.
func (d *Detector) Detect(records []model.EnrichedRecord, now time.Time) []model.AlertRecord {
	ts := now.UTC().Truncate(d.cfg.DedupeBucket)

	var alerts []model.AlertRecord

	// 1. High-urgency complaints.
	matched := make(map[int]bool, len(records))
	for i, rec := range records {
		if rec.FeedbackType == model.FeedbackComplaint && rec.Urgency == model.UrgencyHigh {
			matched[i] = true
			alerts = append(alerts, recordAlert(rec, model.AlertHighUrgencyComplaint,
				"High urgency complaint, escalate immediately.", ts))
		}
	}

	// 2. Strong negatives, excluding records already alerted above.
	for i, rec := range records {
		if matched[i] {
			continue
		}
		if rec.Sentiment == model.SentimentNegative && rec.Confidence >= d.cfg.NegativeConfidenceThreshold {
			alerts = append(alerts, recordAlert(rec, model.AlertStrongNegative,
				"Negative sentiment with high confidence.", ts))
		}
	}

	// 3. Complaint spikes per product over the recent window.
	alerts = append(alerts, d.detectSpikes(records, now, ts)...)

	if len(alerts) == 0 {
		zap.L().Info("no alerts generated")
	}
	return alerts
}

// detectSpikes compares recent per-product complaint counts against their
// historical baseline. Both windows must be populated; without a baseline
// reference there is nothing to spike against.
func (d *Detector) detectSpikes(records []model.EnrichedRecord, now, ts time.Time) []model.AlertRecord {
	windowStart := now.Add(-d.cfg.SpikeWindow)

	recentTotal, pastTotal := 0, 0
	recentCounts := make(map[string]int)
	pastCounts := make(map[string]int)

	for _, rec := range records {
		// Unparsable timestamps are excluded from window membership.
		if rec.ParsedDate == nil {
			continue
		}
		if rec.ParsedDate.Before(windowStart) {
			pastTotal++
			if rec.FeedbackType == model.FeedbackComplaint {
				pastCounts[rec.Product]++
			}
		} else {
			recentTotal++
			if rec.FeedbackType == model.FeedbackComplaint {
				recentCounts[rec.Product]++
			}
		}
	}

	if recentTotal == 0 || pastTotal == 0 || len(recentCounts) == 0 {
		return nil
	}

	products := make([]string, 0, len(recentCounts))
	for p := range recentCounts {
		products = append(products, p)
	}
	sort.Strings(products)

	var alerts []model.AlertRecord
	for _, product := range products {
		recent := recentCounts[product]
		baseline := float64(pastCounts[product])
		if baseline == 0 {
			baseline = d.cfg.BaselineFloor
		}
		if float64(recent) >= d.cfg.SpikeMultiplier*baseline {
			alerts = append(alerts, model.AlertRecord{
				AlertType:   model.AlertComplaintSpike,
				Product:     product,
				RecentCount: recent,
				Baseline:    baseline,
				Details:     fmt.Sprintf("Spike in complaints for %s: %d vs baseline %.1f", product, recent, baseline),
				Timestamp:   ts,
			})
		}
	}
	return alerts
}

// recordAlert builds a per-record alert carrying the source record context.
func recordAlert(rec model.EnrichedRecord, at model.AlertType, details string, ts time.Time) model.AlertRecord {
	return model.AlertRecord{
		AlertType:    at,
		RecordID:     rec.ID,
		Platform:     rec.Platform,
		Sender:       rec.Sender,
		Product:      rec.Product,
		Sentiment:    rec.Sentiment,
		Confidence:   rec.Confidence,
		Urgency:      rec.Urgency,
		FeedbackType: rec.FeedbackType,
		Action:       rec.Action,
		Details:      details,
		Timestamp:    ts,
	}
}
