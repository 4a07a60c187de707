package model

import "time"

// Platform identifies the channel a feedback item arrived on.
type Platform string

const (
	PlatformEmail   Platform = "email"
	PlatformReddit  Platform = "reddit"
	PlatformTwitter Platform = "twitter"
)

// Sentiment is the label produced by the upstream sentiment classifier.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// FeedbackType classifies what kind of feedback a message is.
type FeedbackType string

const (
	FeedbackComplaint  FeedbackType = "complaint"
	FeedbackSuggestion FeedbackType = "suggestion"
	FeedbackPraise     FeedbackType = "praise"
	FeedbackNeutral    FeedbackType = "neutral"
)

// Urgency grades how quickly a feedback item needs attention.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Department is the team responsible for handling a feedback item.
type Department string

const (
	DepartmentFinance         Department = "finance"
	DepartmentProduct         Department = "product"
	DepartmentEngineering     Department = "engineering"
	DepartmentSupport         Department = "support"
	DepartmentCustomerSuccess Department = "customer_success"
	DepartmentGeneral         Department = "general"
)

// Action is the recommended next step for a feedback item.
type Action string

const (
	ActionEscalate      Action = "escalate"
	ActionAcknowledge   Action = "acknowledge"
	ActionLogForRoadmap Action = "log for roadmap"
	ActionThankAndShare Action = "thank and share"
	ActionReview        Action = "review"
)

// ProductUnknown is the product tag used when no configured keyword matches.
const ProductUnknown = "unknown"

// FeedbackRecord is one sentiment-labeled feedback item as produced by the
// upstream classifier. Records are immutable once enriched.
type FeedbackRecord struct {
	ID       string   `json:"id"`
	Platform Platform `json:"platform"`
	Sender   string   `json:"sender,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Username string   `json:"username,omitempty"`
	Body     string   `json:"body"`

	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
	// ConfidenceDefaulted is true when the source confidence field was
	// missing or unparsable and 0.0 was substituted.
	ConfidenceDefaulted bool `json:"confidence_defaulted,omitempty"`

	// Date is the raw source timestamp string; ParsedDate is nil when the
	// raw value could not be parsed.
	Date       string     `json:"date"`
	ParsedDate *time.Time `json:"parsed_date,omitempty"`

	Tag          string `json:"tag,omitempty"`
	WasTruncated bool   `json:"was_truncated,omitempty"`
}

// Enrichment holds the five derived classification dimensions. Every field is
// always populated; classification is total.
type Enrichment struct {
	FeedbackType FeedbackType `json:"feedback_type"`
	Urgency      Urgency      `json:"urgency"`
	Product      string       `json:"product"`
	Department   Department   `json:"department"`
	Action       Action       `json:"action_recommended"`
}

// EnrichedRecord is a FeedbackRecord plus its derived dimensions.
type EnrichedRecord struct {
	FeedbackRecord
	Enrichment
}
