package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/feedback-cli/internal/model"
	"github.com/sells-group/feedback-cli/internal/rules"
)

func TestAssociator_Associate(t *testing.T) {
	a := NewAssociator(rules.Default())

	tests := []struct {
		name string
		text string
		want string
	}{
		{"checkout keyword", "the checkout page froze", "checkout"},
		{"billing maps to checkout", "my billing looks wrong", "checkout"},
		{"mobile app", "the app keeps freezing", "mobile_app"},
		{"product x phrase", "Product X stopped syncing", "product_x"},
		{"case insensitive", "PAYMENT FAILED", "checkout"},
		{"no match", "hello there", model.ProductUnknown},
		{"empty", "", model.ProductUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Associate(tt.text))
		})
	}
}

func TestAssociator_ConfiguredOrderWins(t *testing.T) {
	a := NewAssociator(rules.Rules{
		Products: []rules.ProductRule{
			{Name: "first", Keywords: []string{"shared"}},
			{Name: "second", Keywords: []string{"shared", "only-second"}},
		},
	})

	assert.Equal(t, "first", a.Associate("a shared keyword"))
	assert.Equal(t, "second", a.Associate("only-second matches"))
}
