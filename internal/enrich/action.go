package enrich

import "github.com/sells-group/feedback-cli/internal/model"

// RecommendAction returns the next step for a classified feedback item.
// The department parameter is accepted for forward compatibility but the
// current rule set does not use it.
func RecommendAction(ftype model.FeedbackType, urgency model.Urgency, _ model.Department) model.Action {
	switch ftype {
	case model.FeedbackComplaint:
		if urgency == model.UrgencyHigh {
			return model.ActionEscalate
		}
		return model.ActionAcknowledge
	case model.FeedbackSuggestion:
		return model.ActionLogForRoadmap
	case model.FeedbackPraise:
		return model.ActionThankAndShare
	default:
		return model.ActionReview
	}
}
