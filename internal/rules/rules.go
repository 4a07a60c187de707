// Package rules holds the keyword and pattern configuration that drives the
// enrichment heuristics. A Rules value is built once (from defaults or a YAML
// file) and passed into the classifiers at construction; nothing reads global
// state.
package rules

import (
	"os"
	"regexp"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// CategoryRule maps a feedback type to its regex patterns. Declaration order
// in the Categories slice is the match priority.
type CategoryRule struct {
	Type     string   `yaml:"type"`
	Patterns []string `yaml:"patterns"`
}

// ProductRule maps a product tag to its substring keywords. Declaration order
// in the Products slice is the match priority.
type ProductRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// UrgencyWords holds the additive urgency keyword bands.
type UrgencyWords struct {
	High   []string `yaml:"high"`
	Medium []string `yaml:"medium"`
	Low    []string `yaml:"low"`
}

// Routing holds the department routing patterns.
type Routing struct {
	// BillingPattern routes matching text to finance regardless of
	// feedback type.
	BillingPattern string `yaml:"billing_pattern"`
	// TechnicalKeywords route complaints to engineering.
	TechnicalKeywords []string `yaml:"technical_keywords"`
}

// Rules is the full heuristic rule set for one tenant or test fixture.
type Rules struct {
	Categories []CategoryRule `yaml:"categories"`
	Products   []ProductRule  `yaml:"products"`
	Urgency    UrgencyWords   `yaml:"urgency"`
	Routing    Routing        `yaml:"routing"`
}

// Default returns the built-in rule set.
func Default() Rules {
	return Rules{
		Categories: []CategoryRule{
			{
				Type: "complaint",
				Patterns: []string{
					`\b(issue|problem|not working|fail|error|wrong|broken|delayed|late|hate|bad|doesn't work|cannot|unable)\b`,
				},
			},
			{
				Type: "suggestion",
				Patterns: []string{
					`\b(suggestion|would be great if|please add|could you|improve|feature request|should have|wish)\b`,
				},
			},
			{
				Type: "praise",
				Patterns: []string{
					`\b(love|great|excellent|awesome|fantastic|thank you|amazing|happy|satisfied|good job)\b`,
				},
			},
		},
		Products: []ProductRule{
			{Name: "product_x", Keywords: []string{"product x", "x model", "x feature"}},
			{Name: "product_y", Keywords: []string{"product y", "y edition", "y update"}},
			{Name: "checkout", Keywords: []string{"checkout", "payment", "billing", "invoice", "refund"}},
			{Name: "mobile_app", Keywords: []string{"app", "mobile", "crash", "slow app", "lag"}},
		},
		Urgency: UrgencyWords{
			High:   []string{"immediately", "urgent", "asap", "right now", "critical", "outage", "down"},
			Medium: []string{"soon", "priority", "important", "attention", "warning"},
			Low:    []string{"whenever", "later", "no rush"},
		},
		Routing: Routing{
			BillingPattern:    `\b(bill|payment|invoice|refund)\b`,
			TechnicalKeywords: []string{"crash", "error", "bug", "not working", "fail", "slow"},
		},
	}
}

// LoadFile reads a rule set from a YAML file. Sections left empty in the file
// fall back to the defaults, so a tenant override only needs to state what
// differs.
func LoadFile(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, eris.Wrapf(err, "rules: read %s", path)
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, eris.Wrapf(err, "rules: unmarshal %s", path)
	}

	def := Default()
	if len(r.Categories) == 0 {
		r.Categories = def.Categories
	}
	if len(r.Products) == 0 {
		r.Products = def.Products
	}
	if len(r.Urgency.High) == 0 && len(r.Urgency.Medium) == 0 && len(r.Urgency.Low) == 0 {
		r.Urgency = def.Urgency
	}
	if r.Routing.BillingPattern == "" {
		r.Routing.BillingPattern = def.Routing.BillingPattern
	}
	if len(r.Routing.TechnicalKeywords) == 0 {
		r.Routing.TechnicalKeywords = def.Routing.TechnicalKeywords
	}

	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Validate checks that every pattern in the rule set compiles.
func (r Rules) Validate() error {
	for _, c := range r.Categories {
		for _, p := range c.Patterns {
			if _, err := regexp.Compile(p); err != nil {
				return eris.Wrapf(err, "rules: category %s pattern %q", c.Type, p)
			}
		}
	}
	if _, err := regexp.Compile(r.Routing.BillingPattern); err != nil {
		return eris.Wrapf(err, "rules: billing pattern %q", r.Routing.BillingPattern)
	}
	return nil
}
