package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
	"github.com/FereolKpavode/CHURN/internal/application/usecase"
	"github.com/FereolKpavode/CHURN/internal/domain/fault"
	"github.com/FereolKpavode/CHURN/internal/domain/model"
	"github.com/FereolKpavode/CHURN/internal/domain/port"
	"github.com/FereolKpavode/CHURN/internal/domain/service"
)

// reportingMock adds global importances to the fixed-probability classifier.
type reportingMock struct {
	mockClassifier
}

func (m *reportingMock) FeatureImportances() []float64 {
	imp := make([]float64, model.NumFeatures)
	imp[8] = 1.0
	return imp
}

func newExplainPrediction(provider port.ClassifierProvider, enabled bool) *usecase.ExplainPrediction {
	cfg := service.ExplainerConfig{
		Enabled:        enabled,
		BackgroundSize: 10,
		Permutations:   2,
		Seed:           42,
		SampleSize:     3,
	}
	explainer := service.NewExplainer(provider, cfg, testLogger())
	return usecase.NewExplainPrediction(provider, explainer, service.NewValidator(), 3, 0.10, testLogger())
}

func TestExplainPrediction_Execute(t *testing.T) {
	provider := &mockProvider{classifier: &mockClassifier{probability: 0.42}}
	uc := newExplainPrediction(provider, true)

	resp, err := uc.Execute(context.Background(), dto.ExplainRequest{Attributes: validAttributes()})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.InDelta(t, 0.42, resp.Baseline, 1e-9, "constant model makes the baseline the probability itself")
	assert.InDelta(t, 0.42, resp.Probability, 1e-6)
	assert.Len(t, resp.Attributions, model.NumFeatures)
	assert.Len(t, resp.Interpretations, 3)

	// A constant model attributes nothing to any feature.
	for _, attr := range resp.Attributions {
		assert.InDelta(t, 0.0, attr.Contribution, 1e-9)
	}
}

func TestExplainPrediction_Execute_Disabled(t *testing.T) {
	provider := &mockProvider{classifier: &mockClassifier{probability: 0.42}}
	uc := newExplainPrediction(provider, false)

	resp, err := uc.Execute(context.Background(), dto.ExplainRequest{Attributes: validAttributes()})
	require.NoError(t, err, "an unavailable explainer degrades, it does not fail")
	assert.False(t, resp.Available)
}

func TestExplainPrediction_Execute_ValidationError(t *testing.T) {
	provider := &mockProvider{classifier: &mockClassifier{probability: 0.42}}
	uc := newExplainPrediction(provider, true)

	attrs := validAttributes()
	attrs.SatisfactionScore = 9

	_, err := uc.Execute(context.Background(), dto.ExplainRequest{Attributes: attrs})
	require.Error(t, err)

	var validationErr *fault.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestExplainPrediction_Importances(t *testing.T) {
	provider := &mockProvider{classifier: &reportingMock{mockClassifier{probability: 0.42}}}
	uc := newExplainPrediction(provider, true)

	resp, err := uc.Importances(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Len(t, resp.Features, model.NumFeatures)
	assert.Equal(t, 1.0, resp.ModelImportance[8])
}

func TestExplainPrediction_Importances_NoReporter(t *testing.T) {
	provider := &mockProvider{classifier: &mockClassifier{probability: 0.42}}
	uc := newExplainPrediction(provider, true)

	resp, err := uc.Importances(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.Available)
}
