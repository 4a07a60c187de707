package alert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/feedback-cli/internal/model"
)

func testAlerts(ts time.Time) []model.AlertRecord {
	return []model.AlertRecord{
		{
			AlertType:    model.AlertHighUrgencyComplaint,
			RecordID:     "f-1",
			Platform:     model.PlatformEmail,
			Sender:       "ana@example.com",
			Product:      "checkout",
			Sentiment:    model.SentimentNegative,
			Confidence:   0.91,
			Urgency:      model.UrgencyHigh,
			FeedbackType: model.FeedbackComplaint,
			Action:       model.ActionEscalate,
			Details:      "High urgency complaint, escalate immediately.",
			Timestamp:    ts,
		},
		{
			AlertType:   model.AlertComplaintSpike,
			Product:     "checkout",
			RecentCount: 4,
			Baseline:    1,
			Details:     "Spike in complaints for checkout: 4 vs baseline 1.0",
			Timestamp:   ts,
		},
	}
}

func TestMergeHistory_FreshFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts", "alerts.csv")
	ts := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)

	added, total, err := MergeHistory(testAlerts(ts), path)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, total)

	loaded, err := loadHistory(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, model.AlertHighUrgencyComplaint, loaded[0].AlertType)
	assert.Equal(t, "f-1", loaded[0].RecordID)
	assert.InDelta(t, 0.91, loaded[0].Confidence, 1e-9)
	assert.Equal(t, model.AlertComplaintSpike, loaded[1].AlertType)
	assert.Equal(t, 4, loaded[1].RecentCount)
	assert.InDelta(t, 1.0, loaded[1].Baseline, 1e-9)
	assert.Equal(t, ts, loaded[1].Timestamp)
}

func TestMergeHistory_RerunAddsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.csv")
	ts := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)

	_, _, err := MergeHistory(testAlerts(ts), path)
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	added, total, err := MergeHistory(testAlerts(ts), path)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, 2, total)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMergeHistory_NewTimestampAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.csv")
	ts := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)

	_, _, err := MergeHistory(testAlerts(ts), path)
	require.NoError(t, err)

	added, total, err := MergeHistory(testAlerts(ts.Add(time.Hour)), path)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 4, total)
}

func TestMergeHistory_PreservesExistingOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.csv")
	ts := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)

	_, _, err := MergeHistory(testAlerts(ts), path)
	require.NoError(t, err)

	newer := model.AlertRecord{
		AlertType: model.AlertStrongNegative,
		RecordID:  "f-2",
		Platform:  model.PlatformTwitter,
		Sentiment: model.SentimentNegative,
		Timestamp: ts.Add(time.Hour),
		Details:   "Negative sentiment with high confidence.",
	}
	_, _, err = MergeHistory([]model.AlertRecord{newer}, path)
	require.NoError(t, err)

	loaded, err := loadHistory(path)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, model.AlertHighUrgencyComplaint, loaded[0].AlertType)
	assert.Equal(t, model.AlertComplaintSpike, loaded[1].AlertType)
	assert.Equal(t, model.AlertStrongNegative, loaded[2].AlertType)
}

func TestLoadHistory_MissingFileIsEmpty(t *testing.T) {
	loaded, err := loadHistory(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestHistoryRow_SparseColumns(t *testing.T) {
	ts := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)
	alerts := testAlerts(ts)

	recordRow := historyRow(alerts[0])
	assert.Equal(t, "0.910", recordRow[6])
	assert.Empty(t, recordRow[10])
	assert.Empty(t, recordRow[11])

	spikeRow := historyRow(alerts[1])
	assert.Empty(t, spikeRow[1])
	assert.Empty(t, spikeRow[6])
	assert.Equal(t, "4", spikeRow[10])
	assert.Equal(t, "1.0", spikeRow[11])
}

func TestHistoryRow_ConfidenceKeptWithoutRecordID(t *testing.T) {
	// A per-record alert from a source row with no id still carries its
	// confidence; only spike rows leave the column empty.
	row := historyRow(model.AlertRecord{
		AlertType:  model.AlertStrongNegative,
		Platform:   model.PlatformTwitter,
		Sentiment:  model.SentimentNegative,
		Confidence: 0.84,
		Timestamp:  time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC),
	})
	assert.Empty(t, row[1])
	assert.Equal(t, "0.840", row[6])
}

func TestLoadHistory_SkipsUnparsableTimestampRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.csv")
	ts := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)

	_, _, err := MergeHistory(testAlerts(ts), path)
	require.NoError(t, err)

	// Damage the first row's timestamp in place.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	corrupted := strings.Replace(string(data), "2026-08-14T12:00:00Z", "not-a-time", 1)
	require.NoError(t, os.WriteFile(path, []byte(corrupted), 0o644))

	loaded, err := loadHistory(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, model.AlertComplaintSpike, loaded[0].AlertType)
	assert.Equal(t, ts, loaded[0].Timestamp)
}
