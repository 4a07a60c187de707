package model

import "time"

// AlertType identifies which risk condition raised an alert.
type AlertType string

const (
	AlertHighUrgencyComplaint AlertType = "high_urgency_complaint"
	AlertStrongNegative       AlertType = "strong_negative"
	AlertComplaintSpike       AlertType = "complaint_spike"
)

// AlertRecord is one detected risk condition. Per-record alerts carry the
// source record context; spike alerts carry the per-product counts instead.
type AlertRecord struct {
	AlertType AlertType `json:"alert_type"`

	// Per-record alert context (high_urgency_complaint, strong_negative).
	RecordID     string       `json:"record_id,omitempty"`
	Platform     Platform     `json:"platform,omitempty"`
	Sender       string       `json:"sender,omitempty"`
	Sentiment    Sentiment    `json:"sentiment,omitempty"`
	Confidence   float64      `json:"confidence,omitempty"`
	Urgency      Urgency      `json:"urgency,omitempty"`
	FeedbackType FeedbackType `json:"feedback_type,omitempty"`
	Action       Action       `json:"action,omitempty"`

	// Product is the subject product for spike alerts, or the associated
	// product tag for per-record alerts.
	Product string `json:"product,omitempty"`

	// Spike alert aggregates.
	RecentCount int     `json:"recent_count,omitempty"`
	Baseline    float64 `json:"baseline,omitempty"`

	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// DedupeKey returns the composite key used to collapse repeated alerts across
// runs: (alert_type, record reference, product, timestamp bucket).
func (a AlertRecord) DedupeKey() string {
	return string(a.AlertType) + "|" + a.RecordID + "|" + a.Product + "|" + a.Timestamp.UTC().Format(time.RFC3339)
}
