package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FereolKpavode/CHURN/internal/domain/event"
	"github.com/FereolKpavode/CHURN/internal/domain/model"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
)

func TestNewChurnPrediction(t *testing.T) {
	customer, err := model.NewCustomerRecord(validInput())
	require.NoError(t, err)

	p, err := model.NewChurnPrediction(customer, 1, 0.82, valueobject.DefaultTierThresholds)
	require.NoError(t, err)

	assert.True(t, p.WillChurn())
	assert.Equal(t, "PARTIR", p.Decision())
	assert.Equal(t, 0.82, p.Probability())
	assert.True(t, p.RiskTier().Equal(valueobject.RiskTierHigh))
	assert.NotEqual(t, p.ID().String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, p.PredictedAt().IsZero())
}

func TestNewChurnPrediction_Stay(t *testing.T) {
	customer, err := model.NewCustomerRecord(validInput())
	require.NoError(t, err)

	p, err := model.NewChurnPrediction(customer, 0, 0.12, valueobject.DefaultTierThresholds)
	require.NoError(t, err)

	assert.False(t, p.WillChurn())
	assert.Equal(t, "RESTER", p.Decision())
	assert.True(t, p.RiskTier().Equal(valueobject.RiskTierLow))
}

func TestNewChurnPrediction_Invalid(t *testing.T) {
	customer, err := model.NewCustomerRecord(validInput())
	require.NoError(t, err)

	_, err = model.NewChurnPrediction(nil, 0, 0.5, valueobject.DefaultTierThresholds)
	assert.Error(t, err)

	_, err = model.NewChurnPrediction(customer, 2, 0.5, valueobject.DefaultTierThresholds)
	assert.Error(t, err)

	_, err = model.NewChurnPrediction(customer, 1, 1.2, valueobject.DefaultTierThresholds)
	assert.Error(t, err)

	_, err = model.NewChurnPrediction(customer, 1, -0.1, valueobject.DefaultTierThresholds)
	assert.Error(t, err)
}

func TestNewChurnPrediction_Events(t *testing.T) {
	customer, err := model.NewCustomerRecord(validInput())
	require.NoError(t, err)

	// Low risk: only the completion event.
	p, err := model.NewChurnPrediction(customer, 0, 0.1, valueobject.DefaultTierThresholds)
	require.NoError(t, err)

	evts := p.Events()
	require.Len(t, evts, 1)
	assert.Equal(t, event.EventTypePredictionCompleted, evts[0].EventType())

	// High risk: completion plus the alert.
	p, err = model.NewChurnPrediction(customer, 1, 0.9, valueobject.DefaultTierThresholds)
	require.NoError(t, err)

	evts = p.Events()
	require.Len(t, evts, 2)
	assert.Equal(t, event.EventTypePredictionCompleted, evts[0].EventType())
	assert.Equal(t, event.EventTypeHighRiskDetected, evts[1].EventType())
	assert.Equal(t, p.ID(), evts[1].AggregateID())
}

func TestNewChurnPrediction_BoundaryTiers(t *testing.T) {
	customer, err := model.NewCustomerRecord(validInput())
	require.NoError(t, err)

	p, err := model.NewChurnPrediction(customer, 1, 0.70, valueobject.DefaultTierThresholds)
	require.NoError(t, err)
	assert.True(t, p.RiskTier().Equal(valueobject.RiskTierHigh))
	assert.Len(t, p.Events(), 2, "boundary high tier raises the alert")

	p, err = model.NewChurnPrediction(customer, 0, 0.30, valueobject.DefaultTierThresholds)
	require.NoError(t, err)
	assert.True(t, p.RiskTier().Equal(valueobject.RiskTierMedium))
}
