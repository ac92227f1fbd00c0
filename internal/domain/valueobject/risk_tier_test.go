package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
)

func TestTierFor_Boundaries(t *testing.T) {
	thresholds := valueobject.DefaultTierThresholds

	tests := []struct {
		name        string
		probability float64
		want        valueobject.RiskTier
	}{
		{"zero is low", 0.0, valueobject.RiskTierLow},
		{"just below medium cut", 0.2999, valueobject.RiskTierLow},
		{"medium cut belongs to medium", 0.30, valueobject.RiskTierMedium},
		{"mid range is medium", 0.5, valueobject.RiskTierMedium},
		{"just below high cut", 0.6999, valueobject.RiskTierMedium},
		{"high cut belongs to high", 0.70, valueobject.RiskTierHigh},
		{"certainty is high", 1.0, valueobject.RiskTierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := thresholds.TierFor(tt.probability)
			assert.True(t, got.Equal(tt.want), "TierFor(%g) = %s, want %s", tt.probability, got, tt.want)
		})
	}
}

func TestTierFor_CustomThresholds(t *testing.T) {
	thresholds := valueobject.TierThresholds{MediumAt: 0.10, HighAt: 0.50}

	assert.True(t, thresholds.TierFor(0.09).Equal(valueobject.RiskTierLow))
	assert.True(t, thresholds.TierFor(0.10).Equal(valueobject.RiskTierMedium))
	assert.True(t, thresholds.TierFor(0.50).Equal(valueobject.RiskTierHigh))
}

func TestRiskTierFromString(t *testing.T) {
	tier, err := valueobject.RiskTierFromString("MEDIUM")
	require.NoError(t, err)
	assert.True(t, tier.Equal(valueobject.RiskTierMedium))

	_, err = valueobject.RiskTierFromString("EXTREME")
	assert.Error(t, err)
}

func TestRiskTier_Label(t *testing.T) {
	assert.Equal(t, "Faible", valueobject.RiskTierLow.Label())
	assert.Equal(t, "Moyen", valueobject.RiskTierMedium.Label())
	assert.Equal(t, "Élevé", valueobject.RiskTierHigh.Label())
}

func TestRiskTier_IsZero(t *testing.T) {
	var zero valueobject.RiskTier
	assert.True(t, zero.IsZero())
	assert.False(t, valueobject.RiskTierLow.IsZero())
}
