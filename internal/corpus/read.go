// Package corpus is the tabular I/O boundary of the pipeline: it normalizes
// the upstream sentiment-labeled exports (CSV or XLSX, possibly in a legacy
// charset) into FeedbackRecords and writes the enriched corpus back out. All
// decision logic lives in the enrich and alert packages; this package only
// adapts schemas.
package corpus

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/sells-group/feedback-cli/internal/model"
)

// ReadOptions configures the corpus reader.
type ReadOptions struct {
	// Charset names the source encoding for CSV inputs ("windows-1252",
	// "iso-8859-1", ...). Empty or "utf-8" reads the file as-is.
	Charset string
}

// ReadCorpus loads a sentiment-labeled corpus from a CSV or XLSX file and
// normalizes each row into a FeedbackRecord. A missing file surfaces as an
// error satisfying errors.Is(err, os.ErrNotExist) so callers can treat it as
// a stage skip rather than a failure.
func ReadCorpus(path string, opts ReadOptions) ([]model.FeedbackRecord, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readXLSXRows(path)
	} else {
		rows, err = readCSVRows(path, opts.Charset)
	}
	if err != nil {
		return nil, err
	}

	// A file with no data rows is an empty upstream batch, not an error.
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) == 1 {
		zap.L().Info("corpus has no data rows", zap.String("path", path))
	}

	return recordsFromRows(rows[0], rows[1:]), nil
}

// readCSVRows reads all rows of a CSV file, decoding from the named charset
// when one is configured.
func readCSVRows(path, charset string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "corpus: open %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if charset != "" && !strings.EqualFold(charset, "utf-8") {
		enc, encErr := htmlindex.Get(charset)
		if encErr != nil {
			return nil, eris.Wrapf(encErr, "corpus: unsupported charset %q", charset)
		}
		r = enc.NewDecoder().Reader(f)
	}

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "corpus: read %s", path)
	}
	return rows, nil
}

// recordsFromRows maps raw tabular rows onto FeedbackRecords. Alternate
// column names used by older exports (email_id, clean_text, created_at) are
// resolved here so downstream code only ever sees the canonical shape.
func recordsFromRows(header []string, rows [][]string) []model.FeedbackRecord {
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	defaulted := 0
	records := make([]model.FeedbackRecord, 0, len(rows))
	for _, row := range rows {
		confidence, confDefaulted := parseConfidence(getCol(row, colIdx, "confidence"))
		if confDefaulted {
			defaulted++
		}

		date := firstCol(row, colIdx, "date", "created_at")

		rec := model.FeedbackRecord{
			ID:                  firstCol(row, colIdx, "id", "email_id"),
			Platform:            model.Platform(strings.ToLower(getCol(row, colIdx, "platform"))),
			Sender:              getCol(row, colIdx, "sender"),
			Subject:             getCol(row, colIdx, "subject"),
			Username:            getCol(row, colIdx, "username"),
			Body:                firstCol(row, colIdx, "cleaned_body", "clean_text", "text"),
			Sentiment:           model.Sentiment(strings.ToLower(getCol(row, colIdx, "sentiment"))),
			Confidence:          confidence,
			ConfidenceDefaulted: confDefaulted,
			Date:                date,
			ParsedDate:          parseDate(date),
			Tag:                 getCol(row, colIdx, "tag"),
			WasTruncated:        parseBool(getCol(row, colIdx, "was_truncated")),
		}
		records = append(records, rec)
	}

	if defaulted > 0 {
		zap.L().Warn("confidence defaulted to 0.0 for some records",
			zap.Int("records", defaulted))
	}
	return records
}

// ReadEnriched loads a previously written enriched corpus, including the
// derived dimension columns.
func ReadEnriched(path string, opts ReadOptions) ([]model.EnrichedRecord, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readXLSXRows(path)
	} else {
		rows, err = readCSVRows(path, opts.Charset)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	base := recordsFromRows(header, rows[1:])
	enriched := make([]model.EnrichedRecord, 0, len(base))
	for i, row := range rows[1:] {
		enriched = append(enriched, model.EnrichedRecord{
			FeedbackRecord: base[i],
			Enrichment: model.Enrichment{
				FeedbackType: model.FeedbackType(getCol(row, colIdx, "feedback_type")),
				Urgency:      model.Urgency(getCol(row, colIdx, "urgency")),
				Product:      getCol(row, colIdx, "product"),
				Department:   model.Department(getCol(row, colIdx, "department")),
				Action:       model.Action(getCol(row, colIdx, "action_recommended")),
			},
		})
	}
	return enriched, nil
}

// getCol safely retrieves a column value from a row.
func getCol(row []string, colIdx map[string]int, col string) string {
	idx, ok := colIdx[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// firstCol returns the first non-empty value among the named columns.
func firstCol(row []string, colIdx map[string]int, cols ...string) string {
	for _, col := range cols {
		if v := getCol(row, colIdx, col); v != "" {
			return v
		}
	}
	return ""
}
