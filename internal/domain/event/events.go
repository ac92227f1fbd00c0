package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/FereolKpavode/CHURN/pkg/events"
)

const (
	// EventTypePredictionCompleted is emitted for every scored customer.
	EventTypePredictionCompleted = "churn.prediction.completed"

	// EventTypeHighRiskDetected is emitted when a HIGH risk tier is reached,
	// so retention workflows can pick the customer up immediately.
	EventTypeHighRiskDetected = "churn.high_risk.detected"
)

const aggregateType = "ChurnPrediction"

// PredictionCompletedPayload is the serialized body of a prediction event.
type PredictionCompletedPayload struct {
	PredictionID uuid.UUID `json:"prediction_id"`
	Label        int       `json:"label"`
	Probability  float64   `json:"probability"`
	RiskTier     string    `json:"risk_tier"`
	Country      string    `json:"country"`
	Category     string    `json:"category"`
	PredictedAt  time.Time `json:"predicted_at"`
}

// NewPredictionCompleted builds the event published after every prediction.
func NewPredictionCompleted(p PredictionCompletedPayload) events.DomainEvent {
	payload, _ := json.Marshal(p)
	return events.NewBaseEvent(EventTypePredictionCompleted, p.PredictionID, aggregateType, payload)
}

// HighRiskDetectedPayload is the serialized body of a high-risk alert event.
type HighRiskDetectedPayload struct {
	PredictionID uuid.UUID `json:"prediction_id"`
	Probability  float64   `json:"probability"`
	Country      string    `json:"country"`
	Category     string    `json:"category"`
	DetectedAt   time.Time `json:"detected_at"`
}

// NewHighRiskDetected builds the alert event for HIGH tier predictions.
func NewHighRiskDetected(p HighRiskDetectedPayload) events.DomainEvent {
	payload, _ := json.Marshal(p)
	return events.NewBaseEvent(EventTypeHighRiskDetected, p.PredictionID, aggregateType, payload)
}
