package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/feedback-cli/internal/model"
	"github.com/sells-group/feedback-cli/internal/rules"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	r, err := NewRouter(rules.Default())
	require.NoError(t, err)
	return r
}

func TestRouter_Route(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		ftype   model.FeedbackType
		product string
		text    string
		want    model.Department
	}{
		{"checkout product", model.FeedbackNeutral, "checkout", "anything", model.DepartmentFinance},
		{"billing text", model.FeedbackNeutral, "unknown", "where is my refund", model.DepartmentFinance},
		{"suggestion", model.FeedbackSuggestion, "unknown", "please add widgets", model.DepartmentProduct},
		{"technical complaint", model.FeedbackComplaint, "unknown", "the page shows an error", model.DepartmentEngineering},
		{"non-technical complaint", model.FeedbackComplaint, "unknown", "delivery was late", model.DepartmentSupport},
		{"praise", model.FeedbackPraise, "unknown", "love it", model.DepartmentCustomerSuccess},
		{"neutral default", model.FeedbackNeutral, "unknown", "hello", model.DepartmentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Route(tt.ftype, tt.product, tt.text))
		})
	}
}

func TestRouter_FinanceRuleTakesPrecedence(t *testing.T) {
	r := newTestRouter(t)

	// The billing rule beats every feedback-type rule.
	for _, ftype := range []model.FeedbackType{
		model.FeedbackComplaint,
		model.FeedbackSuggestion,
		model.FeedbackPraise,
		model.FeedbackNeutral,
	} {
		got := r.Route(ftype, "checkout", "the error crashed everything")
		assert.Equal(t, model.DepartmentFinance, got, "feedback type %s", ftype)

		got = r.Route(ftype, "unknown", "please fix my invoice")
		assert.Equal(t, model.DepartmentFinance, got, "feedback type %s", ftype)
	}
}
