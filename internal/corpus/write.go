package corpus

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/feedback-cli/internal/model"
)

// enrichedColumns defines the ordered enriched corpus output columns: the
// original corpus columns followed by the five derived dimensions.
var enrichedColumns = []string{
	"id",
	"platform",
	"sender",
	"subject",
	"username",
	"cleaned_body",
	"sentiment",
	"confidence",
	"date",
	"tag",
	"was_truncated",
	"feedback_type",
	"urgency",
	"product",
	"department",
	"action_recommended",
}

// WriteEnriched writes the full enriched corpus, replacing any previous file
// at the destination. Each run is a full recompute, not an incremental merge.
func WriteEnriched(records []model.EnrichedRecord, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "corpus: create output dir for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "corpus: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(enrichedColumns); err != nil {
		return eris.Wrap(err, "corpus: write header")
	}
	for _, rec := range records {
		if err := w.Write(enrichedRow(rec)); err != nil {
			return eris.Wrap(err, "corpus: write row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "corpus: flush")
}

// enrichedRow maps an EnrichedRecord to its output columns.
func enrichedRow(rec model.EnrichedRecord) []string {
	return []string{
		rec.ID,
		string(rec.Platform),
		rec.Sender,
		rec.Subject,
		rec.Username,
		rec.Body,
		string(rec.Sentiment),
		formatConfidence(rec.Confidence),
		rec.Date,
		rec.Tag,
		strconv.FormatBool(rec.WasTruncated),
		string(rec.FeedbackType),
		string(rec.Urgency),
		rec.Product,
		string(rec.Department),
		string(rec.Action),
	}
}
