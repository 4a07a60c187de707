package alert

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/feedback-cli/internal/model"
)

// historyColumns defines the ordered alert history columns.
var historyColumns = []string{
	"alert_type",
	"record_id",
	"platform",
	"sender",
	"product",
	"sentiment",
	"confidence",
	"urgency",
	"feedback_type",
	"action",
	"recent_count",
	"baseline",
	"details",
	"timestamp",
}

// MergeHistory appends new alerts to the history file at path, deduplicating
// by (alert_type, record reference, product, timestamp). History is append-
// only except for this dedupe collapsing; the first occurrence of a key wins.
// Returns the number of net-new rows and the total history size.
func MergeHistory(alerts []model.AlertRecord, path string) (added, total int, err error) {
	existing, err := loadHistory(path)
	if err != nil {
		return 0, 0, err
	}

	seen := make(map[string]bool, len(existing)+len(alerts))
	merged := make([]model.AlertRecord, 0, len(existing)+len(alerts))
	for _, a := range existing {
		if seen[a.DedupeKey()] {
			continue
		}
		seen[a.DedupeKey()] = true
		merged = append(merged, a)
	}
	for _, a := range alerts {
		if seen[a.DedupeKey()] {
			continue
		}
		seen[a.DedupeKey()] = true
		merged = append(merged, a)
		added++
	}

	if err := writeHistory(merged, path); err != nil {
		return 0, 0, err
	}

	zap.L().Info("alert history merged",
		zap.String("path", path),
		zap.Int("new", added),
		zap.Int("total", len(merged)))
	return added, len(merged), nil
}

// loadHistory reads the existing alert history; a missing file is an empty
// history, not an error.
func loadHistory(path string) ([]model.AlertRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "alert: open history %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "alert: read history %s", path)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		colIdx[strings.TrimSpace(col)] = i
	}

	alerts := make([]model.AlertRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		get := func(col string) string {
			idx, ok := colIdx[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		// A row with an unreadable timestamp would collapse to a zero-time
		// dedupe key and swallow other damaged rows with it.
		ts, err := time.Parse(time.RFC3339, get("timestamp"))
		if err != nil {
			zap.L().Warn("skipping history row with unparsable timestamp",
				zap.String("path", path),
				zap.String("timestamp", get("timestamp")))
			continue
		}

		confidence, _ := strconv.ParseFloat(get("confidence"), 64)
		recentCount, _ := strconv.Atoi(get("recent_count"))
		baseline, _ := strconv.ParseFloat(get("baseline"), 64)

		alerts = append(alerts, model.AlertRecord{
			AlertType:    model.AlertType(get("alert_type")),
			RecordID:     get("record_id"),
			Platform:     model.Platform(get("platform")),
			Sender:       get("sender"),
			Product:      get("product"),
			Sentiment:    model.Sentiment(get("sentiment")),
			Confidence:   confidence,
			Urgency:      model.Urgency(get("urgency")),
			FeedbackType: model.FeedbackType(get("feedback_type")),
			Action:       model.Action(get("action")),
			RecentCount:  recentCount,
			Baseline:     baseline,
			Details:      get("details"),
			Timestamp:    ts,
		})
	}
	return alerts, nil
}

// writeHistory writes the full merged history, replacing the previous file.
func writeHistory(alerts []model.AlertRecord, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "alert: create history dir for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "alert: create history %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(historyColumns); err != nil {
		return eris.Wrap(err, "alert: write history header")
	}
	for _, a := range alerts {
		if err := w.Write(historyRow(a)); err != nil {
			return eris.Wrap(err, "alert: write history row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "alert: flush history")
}

// historyRow maps an AlertRecord to its CSV columns. Fields that do not apply
// to the alert type stay empty, matching the sparse tabular shape consumed by
// the dashboard.
func historyRow(a model.AlertRecord) []string {
	confidence := ""
	recentCount := ""
	baseline := ""
	if a.AlertType != model.AlertComplaintSpike {
		confidence = strconv.FormatFloat(a.Confidence, 'f', 3, 64)
	}
	if a.AlertType == model.AlertComplaintSpike {
		recentCount = strconv.Itoa(a.RecentCount)
		baseline = strconv.FormatFloat(a.Baseline, 'f', 1, 64)
	}

	return []string{
		string(a.AlertType),
		a.RecordID,
		string(a.Platform),
		a.Sender,
		a.Product,
		string(a.Sentiment),
		confidence,
		string(a.Urgency),
		string(a.FeedbackType),
		string(a.Action),
		recentCount,
		baseline,
		a.Details,
		a.Timestamp.UTC().Format(time.RFC3339),
	}
}
