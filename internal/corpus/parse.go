package corpus

import (
	"strconv"
	"strings"
	"time"
)

// parseConfidence parses a confidence value, returning (0.0, true) when the
// field is missing or unparsable so that the applied default is observable.
func parseConfidence(s string) (val float64, defaulted bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0.0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0, true
	}
	return v, false
}

// parseBool parses a loose boolean ("true"/"True"/"1"), defaulting to false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

// dateLayouts are the timestamp formats the upstream exports have been seen
// to use: RFC 3339, Python datetime reprs, bare dates, and the Twitter API
// created_at format.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Mon Jan 02 15:04:05 -0700 2006",
	time.RFC1123Z,
	time.RFC1123,
}

// parseDate tries the known layouts and returns nil when none parse. Records
// with a nil date stay eligible for per-record alerting but are excluded from
// time-windowed aggregation.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// formatConfidence renders a confidence value with 3 decimal places for the
// enriched corpus, so reruns on identical input are byte-identical.
func formatConfidence(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
