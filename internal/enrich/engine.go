package enrich

import (
	"go.uber.org/zap"

	"github.com/sells-group/feedback-cli/internal/model"
	"github.com/sells-group/feedback-cli/internal/rules"
)

// Engine applies the five enrichment dimensions to feedback records.
type Engine struct {
	classifier *Classifier
	scorer     *Scorer
	associator *Associator
	router     *Router
}

// NewEngine builds an enrichment engine from a rule set.
func NewEngine(r rules.Rules) (*Engine, error) {
	classifier, err := NewClassifier(r)
	if err != nil {
		return nil, err
	}
	router, err := NewRouter(r)
	if err != nil {
		return nil, err
	}
	return &Engine{
		classifier: classifier,
		scorer:     NewScorer(r),
		associator: NewAssociator(r),
		router:     router,
	}, nil
}

// Enrich derives the five classification dimensions for one record.
func (e *Engine) Enrich(rec model.FeedbackRecord) model.Enrichment {
	ftype := e.classifier.Classify(rec.Body)
	urgency := e.scorer.ScoreUrgency(rec.Body, rec.Sentiment, rec.Confidence)
	product := e.associator.Associate(rec.Body)
	department := e.router.Route(ftype, product, rec.Body)
	action := RecommendAction(ftype, urgency, department)

	return model.Enrichment{
		FeedbackType: ftype,
		Urgency:      urgency,
		Product:      product,
		Department:   department,
		Action:       action,
	}
}

// EnrichAll enriches a full corpus in input order.
func (e *Engine) EnrichAll(records []model.FeedbackRecord) []model.EnrichedRecord {
	enriched := make([]model.EnrichedRecord, 0, len(records))
	for _, rec := range records {
		enriched = append(enriched, model.EnrichedRecord{
			FeedbackRecord: rec,
			Enrichment:     e.Enrich(rec),
		})
	}
	zap.L().Debug("enrichment complete", zap.Int("records", len(enriched)))
	return enriched
}
