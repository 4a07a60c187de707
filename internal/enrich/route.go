package enrich

import (
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/feedback-cli/internal/model"
	"github.com/sells-group/feedback-cli/internal/rules"
)

// financeProduct is the product tag that always routes to finance.
const financeProduct = "checkout"

// Router maps (feedback type, product, text) to a responsible department.
type Router struct {
	billing   *regexp.Regexp
	technical []string
}

// NewRouter compiles the routing patterns.
func NewRouter(r rules.Rules) (*Router, error) {
	billing, err := regexp.Compile(r.Routing.BillingPattern)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: compile billing pattern")
	}
	return &Router{billing: billing, technical: r.Routing.TechnicalKeywords}, nil
}

// Route evaluates the routing rules in fixed priority order; the first match
// wins. The billing rule takes precedence over everything else.
func (r *Router) Route(ftype model.FeedbackType, product, text string) model.Department {
	lower := strings.ToLower(text)

	if product == financeProduct || r.billing.MatchString(lower) {
		return model.DepartmentFinance
	}
	if ftype == model.FeedbackSuggestion {
		return model.DepartmentProduct
	}
	if ftype == model.FeedbackComplaint {
		for _, w := range r.technical {
			if strings.Contains(lower, w) {
				return model.DepartmentEngineering
			}
		}
		return model.DepartmentSupport
	}
	if ftype == model.FeedbackPraise {
		return model.DepartmentCustomerSuccess
	}
	return model.DepartmentGeneral
}
