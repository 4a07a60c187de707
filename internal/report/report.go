// Package report aggregates the enriched corpus into the summary breakdowns
// consumed outside the dashboard: sentiment by platform, department load,
// urgency mix, and top products.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/feedback-cli/internal/model"
)

// Summary holds aggregate counts over an enriched corpus.
type Summary struct {
	Total        int
	BySentiment  map[model.Sentiment]int
	ByPlatform   map[model.Platform]int
	ByType       map[model.FeedbackType]int
	ByUrgency    map[model.Urgency]int
	ByDepartment map[model.Department]int
	ByProduct    map[string]int
}

// Summarize computes the aggregate counts for an enriched corpus.
func Summarize(records []model.EnrichedRecord) Summary {
	s := Summary{
		Total:        len(records),
		BySentiment:  make(map[model.Sentiment]int),
		ByPlatform:   make(map[model.Platform]int),
		ByType:       make(map[model.FeedbackType]int),
		ByUrgency:    make(map[model.Urgency]int),
		ByDepartment: make(map[model.Department]int),
		ByProduct:    make(map[string]int),
	}
	for _, rec := range records {
		s.BySentiment[rec.Sentiment]++
		s.ByPlatform[rec.Platform]++
		s.ByType[rec.FeedbackType]++
		s.ByUrgency[rec.Urgency]++
		s.ByDepartment[rec.Department]++
		s.ByProduct[rec.Product]++
	}
	return s
}

// Format renders a human-readable summary report.
func Format(s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Feedback Summary (%d records)\n\n", s.Total)

	writeSection(&b, "Sentiment", toCounts(s.BySentiment))
	writeSection(&b, "Platform", toCounts(s.ByPlatform))
	writeSection(&b, "Feedback Type", toCounts(s.ByType))
	writeSection(&b, "Urgency", toCounts(s.ByUrgency))
	writeSection(&b, "Department", toCounts(s.ByDepartment))
	writeSection(&b, "Product", s.ByProduct)

	return b.String()
}

// writeSection renders one breakdown sorted by count descending, then name.
func writeSection(b *strings.Builder, title string, counts map[string]int) {
	fmt.Fprintf(b, "## %s\n", title)
	for _, kc := range sortedCounts(counts) {
		pct := 0.0
		if total := sumCounts(counts); total > 0 {
			pct = float64(kc.count) / float64(total) * 100
		}
		fmt.Fprintf(b, "- %s: %d (%.1f%%)\n", kc.key, kc.count, pct)
	}
	b.WriteString("\n")
}

// WriteStatsCSV writes the summary as a long-format stats table
// (dimension, value, count) for the reporting layer.
func WriteStatsCSV(s Summary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "report: create output dir for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "report: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"dimension", "value", "count"}); err != nil {
		return eris.Wrap(err, "report: write header")
	}

	sections := []struct {
		name   string
		counts map[string]int
	}{
		{"sentiment", toCounts(s.BySentiment)},
		{"platform", toCounts(s.ByPlatform)},
		{"feedback_type", toCounts(s.ByType)},
		{"urgency", toCounts(s.ByUrgency)},
		{"department", toCounts(s.ByDepartment)},
		{"product", s.ByProduct},
	}
	for _, sec := range sections {
		for _, kc := range sortedCounts(sec.counts) {
			if err := w.Write([]string{sec.name, kc.key, strconv.Itoa(kc.count)}); err != nil {
				return eris.Wrap(err, "report: write row")
			}
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "report: flush")
}

type keyCount struct {
	key   string
	count int
}

// sortedCounts orders a breakdown by count descending, ties by key.
func sortedCounts(counts map[string]int) []keyCount {
	out := make([]keyCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, keyCount{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

func sumCounts(counts map[string]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

// toCounts converts a typed-key breakdown to string keys for rendering.
func toCounts[K ~string](m map[K]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, c := range m {
		out[string(k)] = c
	}
	return out
}
