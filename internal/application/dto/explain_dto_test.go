package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
	"github.com/FereolKpavode/CHURN/internal/domain/model"
)

func TestFromAttribution(t *testing.T) {
	a := &model.Attribution{
		Baseline: 0.2,
		Contributions: []model.FeatureContribution{
			{Name: "age", Value: 52, Contribution: 0.05},
			{Name: "complain", Value: 1, Contribution: 0.25},
			{Name: "balance", Value: 120000, Contribution: -0.1},
		},
	}

	resp := dto.FromAttribution(a, 2, 0.1)

	assert.True(t, resp.Available)
	assert.Equal(t, 0.2, resp.Baseline)
	assert.InDelta(t, 0.4, resp.Probability, 1e-12)

	// Attributions come ranked by absolute magnitude.
	require.Len(t, resp.Attributions, 3)
	assert.Equal(t, "complain", resp.Attributions[0].Feature)
	assert.Equal(t, "balance", resp.Attributions[1].Feature)
	assert.Equal(t, "age", resp.Attributions[2].Feature)

	assert.Len(t, resp.Interpretations, 2)
}

func TestFromImportanceComparison(t *testing.T) {
	cmp := &model.ImportanceComparison{
		Features:              []string{"a", "b"},
		ModelImportance:       []float64{1.0, 0.5},
		AttributionImportance: []float64{0.8, 1.0},
	}

	resp := dto.FromImportanceComparison(cmp)

	assert.True(t, resp.Available)
	assert.Equal(t, cmp.Features, resp.Features)
	assert.Equal(t, cmp.ModelImportance, resp.ModelImportance)
	assert.Equal(t, cmp.AttributionImportance, resp.AttributionImportance)
}
