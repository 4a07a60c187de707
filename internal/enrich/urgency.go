package enrich

import (
	"strings"

	"github.com/sells-group/feedback-cli/internal/model"
	"github.com/sells-group/feedback-cli/internal/rules"
)

// negativeConfidenceBoost is the confidence level at which a negative
// sentiment contributes +2 to the urgency score instead of +1.
const negativeConfidenceBoost = 0.6

// Scorer maps (text, sentiment, confidence) to an urgency level via additive
// keyword scoring.
type Scorer struct {
	words rules.UrgencyWords
}

// NewScorer builds a Scorer from the urgency word bands.
func NewScorer(r rules.Rules) *Scorer {
	return &Scorer{words: r.Urgency}
}

// Score returns the raw integer urgency score. Each listed keyword present in
// the text adds its band weight: +3 high, +1 medium, -1 low.
func (s *Scorer) Score(text string, sentiment model.Sentiment, confidence float64) int {
	lower := strings.ToLower(text)

	score := 0
	if sentiment == model.SentimentNegative {
		if confidence >= negativeConfidenceBoost {
			score += 2
		} else {
			score++
		}
	}

	for _, w := range s.words.High {
		if strings.Contains(lower, w) {
			score += 3
		}
	}
	for _, w := range s.words.Medium {
		if strings.Contains(lower, w) {
			score++
		}
	}
	for _, w := range s.words.Low {
		if strings.Contains(lower, w) {
			score--
		}
	}

	return score
}

// Urgency maps a raw score to an urgency level. The three ranges partition
// the integers, so the mapping is total and monotonic.
func Urgency(score int) model.Urgency {
	switch {
	case score >= 3:
		return model.UrgencyHigh
	case score >= 1:
		return model.UrgencyMedium
	default:
		return model.UrgencyLow
	}
}

// ScoreUrgency scores the text and maps the result to an urgency level.
func (s *Scorer) ScoreUrgency(text string, sentiment model.Sentiment, confidence float64) model.Urgency {
	return Urgency(s.Score(text, sentiment, confidence))
}
