package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/feedback-cli/internal/model"
	"github.com/sells-group/feedback-cli/internal/rules"
)

func TestScorer_Score(t *testing.T) {
	s := NewScorer(rules.Default())

	tests := []struct {
		name       string
		text       string
		sentiment  model.Sentiment
		confidence float64
		want       int
	}{
		{"neutral no keywords", "everything is fine", model.SentimentNeutral, 0.9, 0},
		{"negative high confidence", "not great", model.SentimentNegative, 0.6, 2},
		{"negative low confidence", "not great", model.SentimentNegative, 0.59, 1},
		{"positive ignored", "urgent need", model.SentimentPositive, 0.99, 3},
		{"one high keyword", "this is urgent", model.SentimentNeutral, 0.5, 3},
		{"two high keywords", "urgent, fix asap", model.SentimentNeutral, 0.5, 6},
		{"medium keywords", "needs attention soon", model.SentimentNeutral, 0.5, 2},
		{"low keyword subtracts", "fix whenever, no rush", model.SentimentNeutral, 0.5, -2},
		{"bands accumulate", "urgent and important", model.SentimentNegative, 0.8, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Score(tt.text, tt.sentiment, tt.confidence))
		})
	}
}

func TestUrgency_ThreeWayPartition(t *testing.T) {
	tests := []struct {
		score int
		want  model.Urgency
	}{
		{-5, model.UrgencyLow},
		{0, model.UrgencyLow},
		{1, model.UrgencyMedium},
		{2, model.UrgencyMedium},
		{3, model.UrgencyHigh},
		{10, model.UrgencyHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Urgency(tt.score), "score %d", tt.score)
	}
}

func TestUrgency_Monotonic(t *testing.T) {
	rank := map[model.Urgency]int{
		model.UrgencyLow:    0,
		model.UrgencyMedium: 1,
		model.UrgencyHigh:   2,
	}
	prev := Urgency(-10)
	for score := -9; score <= 10; score++ {
		cur := Urgency(score)
		assert.GreaterOrEqual(t, rank[cur], rank[prev], "score %d", score)
		prev = cur
	}
}

func TestScorer_NegativeHighConfidenceAloneIsMedium(t *testing.T) {
	s := NewScorer(rules.Default())

	// Strong negative sentiment with no urgency keywords scores 2, which
	// maps to medium, not high.
	got := s.ScoreUrgency("the service was disappointing", model.SentimentNegative, 0.75)
	assert.Equal(t, model.UrgencyMedium, got)
}
