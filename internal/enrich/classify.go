// Package enrich implements the rule-based feedback enrichment engine: text
// classification, urgency scoring, product association, department routing,
// and action recommendation. Every function here is total — each dimension
// has an explicit fallback, so enrichment never fails on any input.
package enrich

import (
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/feedback-cli/internal/model"
	"github.com/sells-group/feedback-cli/internal/rules"
)

// categoryRule is a compiled feedback-type rule.
type categoryRule struct {
	ftype    model.FeedbackType
	patterns []*regexp.Regexp
}

// Classifier maps feedback text to a feedback type via ordered regex rules.
type Classifier struct {
	categories []categoryRule
}

// NewClassifier compiles the category patterns. Category order in the rule
// set is the match priority.
func NewClassifier(r rules.Rules) (*Classifier, error) {
	c := &Classifier{categories: make([]categoryRule, 0, len(r.Categories))}
	for _, cat := range r.Categories {
		cr := categoryRule{ftype: model.FeedbackType(cat.Type)}
		for _, p := range cat.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, eris.Wrapf(err, "enrich: compile category %s pattern", cat.Type)
			}
			cr.patterns = append(cr.patterns, re)
		}
		c.categories = append(c.categories, cr)
	}
	return c, nil
}

// Classify returns the first category whose any pattern matches the lowercased
// text, or neutral when nothing matches.
func (c *Classifier) Classify(text string) model.FeedbackType {
	lower := strings.ToLower(text)
	for _, cat := range c.categories {
		for _, re := range cat.patterns {
			if re.MatchString(lower) {
				return cat.ftype
			}
		}
	}
	return model.FeedbackNeutral
}
