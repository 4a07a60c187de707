package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/feedback-cli/internal/model"
	"github.com/sells-group/feedback-cli/internal/rules"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(rules.Default())
	require.NoError(t, err)
	return c
}

func TestClassifier_Classify(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name string
		text string
		want model.FeedbackType
	}{
		{"complaint keyword", "There is a problem with my order", model.FeedbackComplaint},
		{"complaint phrase", "the login is not working at all", model.FeedbackComplaint},
		{"complaint uppercase", "THIS IS BROKEN", model.FeedbackComplaint},
		{"suggestion", "It would be great if you added dark mode", model.FeedbackSuggestion},
		{"suggestion please add", "please add an export button", model.FeedbackSuggestion},
		{"praise", "I love this product, thank you", model.FeedbackPraise},
		{"no match", "Just checking in on my account", model.FeedbackNeutral},
		{"empty", "", model.FeedbackNeutral},
		{"word boundary not substring", "the unbreakable case", model.FeedbackNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestClassifier_CategoryOrderIsPriority(t *testing.T) {
	c := newTestClassifier(t)

	// Matches both complaint ("issue") and praise ("love"); complaint is
	// declared first so it wins.
	got := c.Classify("I love the app but there is an issue with sync")
	assert.Equal(t, model.FeedbackComplaint, got)

	// Matches both suggestion and praise; suggestion wins.
	got = c.Classify("great work, but please add a search bar")
	assert.Equal(t, model.FeedbackSuggestion, got)
}

func TestClassifier_AlwaysReturnsAValidType(t *testing.T) {
	c := newTestClassifier(t)

	valid := map[model.FeedbackType]bool{
		model.FeedbackComplaint:  true,
		model.FeedbackSuggestion: true,
		model.FeedbackPraise:     true,
		model.FeedbackNeutral:    true,
	}
	inputs := []string{"", "   ", "!@#$%", "ärger with unicode", "a very long " + string(make([]byte, 1024))}
	for _, text := range inputs {
		assert.True(t, valid[c.Classify(text)])
	}
}
