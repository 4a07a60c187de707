package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/feedback-cli/internal/model"
)

func testRecords() []model.EnrichedRecord {
	mk := func(platform model.Platform, sentiment model.Sentiment, ftype model.FeedbackType,
		urgency model.Urgency, dept model.Department, product string) model.EnrichedRecord {
		return model.EnrichedRecord{
			FeedbackRecord: model.FeedbackRecord{Platform: platform, Sentiment: sentiment},
			Enrichment: model.Enrichment{
				FeedbackType: ftype,
				Urgency:      urgency,
				Department:   dept,
				Product:      product,
			},
		}
	}
	return []model.EnrichedRecord{
		mk(model.PlatformEmail, model.SentimentNegative, model.FeedbackComplaint, model.UrgencyHigh, model.DepartmentFinance, "checkout"),
		mk(model.PlatformEmail, model.SentimentNegative, model.FeedbackComplaint, model.UrgencyMedium, model.DepartmentSupport, "checkout"),
		mk(model.PlatformTwitter, model.SentimentPositive, model.FeedbackPraise, model.UrgencyLow, model.DepartmentCustomerSuccess, "mobile_app"),
		mk(model.PlatformReddit, model.SentimentNeutral, model.FeedbackSuggestion, model.UrgencyLow, model.DepartmentProduct, model.ProductUnknown),
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testRecords())

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.BySentiment[model.SentimentNegative])
	assert.Equal(t, 1, s.BySentiment[model.SentimentPositive])
	assert.Equal(t, 2, s.ByPlatform[model.PlatformEmail])
	assert.Equal(t, 2, s.ByType[model.FeedbackComplaint])
	assert.Equal(t, 1, s.ByUrgency[model.UrgencyHigh])
	assert.Equal(t, 2, s.ByUrgency[model.UrgencyLow])
	assert.Equal(t, 1, s.ByDepartment[model.DepartmentFinance])
	assert.Equal(t, 2, s.ByProduct["checkout"])
	assert.Equal(t, 1, s.ByProduct[model.ProductUnknown])
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Total)
	assert.Empty(t, s.BySentiment)
}

func TestFormat(t *testing.T) {
	out := Format(Summarize(testRecords()))

	assert.Contains(t, out, "# Feedback Summary (4 records)")
	assert.Contains(t, out, "## Sentiment")
	assert.Contains(t, out, "- negative: 2 (50.0%)")
	assert.Contains(t, out, "## Product")
	assert.Contains(t, out, "- checkout: 2 (50.0%)")
	assert.Contains(t, out, "## Department")

	// Breakdown lines are count descending.
	assert.Less(t,
		strings.Index(out, "- negative: 2"),
		strings.Index(out, "- neutral: 1"))
}

func TestFormat_Empty(t *testing.T) {
	out := Format(Summarize(nil))
	assert.Contains(t, out, "# Feedback Summary (0 records)")
}

func TestWriteStatsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats", "stats.csv")
	require.NoError(t, WriteStatsCSV(Summarize(testRecords()), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"dimension", "value", "count"}, rows[0])
	assert.Contains(t, rows, []string{"sentiment", "negative", "2"})
	assert.Contains(t, rows, []string{"product", "checkout", "2"})
	assert.Contains(t, rows, []string{"urgency", "low", "2"})

	// Six dimensions over the fixture corpus.
	dims := make(map[string]bool)
	for _, row := range rows[1:] {
		dims[row[0]] = true
	}
	assert.Len(t, dims, 6)
}
