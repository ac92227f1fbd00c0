package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FereolKpavode/CHURN/internal/domain/event"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
	"github.com/FereolKpavode/CHURN/pkg/events"
)

// ChurnPrediction is the immutable result of scoring one customer record.
// Label 0 means the customer is expected to stay, 1 that they are expected
// to leave.
type ChurnPrediction struct {
	events.EventCollector

	id          uuid.UUID
	customer    *CustomerRecord
	label       int
	probability float64
	riskTier    valueobject.RiskTier
	predictedAt time.Time
}

// NewChurnPrediction derives a prediction from the classifier outputs.
// The risk tier follows deterministically from the probability and the
// configured thresholds. Domain events are collected for publication.
func NewChurnPrediction(
	customer *CustomerRecord,
	label int,
	probability float64,
	thresholds valueobject.TierThresholds,
) (*ChurnPrediction, error) {
	if customer == nil {
		return nil, fmt.Errorf("customer record is required")
	}
	if label != 0 && label != 1 {
		return nil, fmt.Errorf("label must be 0 or 1, got %d", label)
	}
	if probability < 0 || probability > 1 {
		return nil, fmt.Errorf("probability must be within [0, 1], got %g", probability)
	}

	p := &ChurnPrediction{
		id:          uuid.New(),
		customer:    customer,
		label:       label,
		probability: probability,
		riskTier:    thresholds.TierFor(probability),
		predictedAt: time.Now().UTC(),
	}

	p.Record(event.NewPredictionCompleted(event.PredictionCompletedPayload{
		PredictionID: p.id,
		Label:        p.label,
		Probability:  p.probability,
		RiskTier:     p.riskTier.String(),
		Country:      customer.Country().Label(),
		Category:     customer.Category().Label(),
		PredictedAt:  p.predictedAt,
	}))

	if p.riskTier.Equal(valueobject.RiskTierHigh) {
		p.Record(event.NewHighRiskDetected(event.HighRiskDetectedPayload{
			PredictionID: p.id,
			Probability:  p.probability,
			Country:      customer.Country().Label(),
			Category:     customer.Category().Label(),
			DetectedAt:   p.predictedAt,
		}))
	}

	return p, nil
}

// WillChurn reports whether the customer is predicted to leave.
func (p *ChurnPrediction) WillChurn() bool {
	return p.label == 1
}

// Decision returns the human-readable decision string used on exports.
func (p *ChurnPrediction) Decision() string {
	if p.WillChurn() {
		return "PARTIR"
	}
	return "RESTER"
}

// --- Accessors ---

func (p *ChurnPrediction) ID() uuid.UUID                   { return p.id }
func (p *ChurnPrediction) Customer() *CustomerRecord       { return p.customer }
func (p *ChurnPrediction) Label() int                      { return p.label }
func (p *ChurnPrediction) Probability() float64            { return p.probability }
func (p *ChurnPrediction) RiskTier() valueobject.RiskTier  { return p.riskTier }
func (p *ChurnPrediction) PredictedAt() time.Time          { return p.predictedAt }
