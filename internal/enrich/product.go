package enrich

import (
	"strings"

	"github.com/sells-group/feedback-cli/internal/model"
	"github.com/sells-group/feedback-cli/internal/rules"
)

// Associator maps feedback text to a product tag via substring keyword
// matching in configured product order.
type Associator struct {
	products []rules.ProductRule
}

// NewAssociator builds an Associator from the product rules.
func NewAssociator(r rules.Rules) *Associator {
	return &Associator{products: r.Products}
}

// Associate returns the first configured product whose any keyword is a
// substring of the lowercased text, or "unknown" when none match.
func (a *Associator) Associate(text string) string {
	lower := strings.ToLower(text)
	for _, p := range a.products {
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				return p.Name
			}
		}
	}
	return model.ProductUnknown
}
