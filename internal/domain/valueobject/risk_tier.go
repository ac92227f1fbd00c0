package valueobject

import "fmt"

// RiskTier is an immutable value object representing the discrete churn risk
// classification derived from the model's continuous probability.
type RiskTier struct {
	value string
}

var (
	RiskTierLow    = RiskTier{value: "LOW"}
	RiskTierMedium = RiskTier{value: "MEDIUM"}
	RiskTierHigh   = RiskTier{value: "HIGH"}
)

// TierThresholds holds the probability cut points separating the tiers.
// The values are business constants with no stated statistical derivation,
// so they are carried as configuration rather than hard-coded.
type TierThresholds struct {
	// MediumAt is the lowest probability classified as MEDIUM.
	MediumAt float64
	// HighAt is the lowest probability classified as HIGH.
	HighAt float64
}

// DefaultTierThresholds are the cut points the model was deployed with.
var DefaultTierThresholds = TierThresholds{MediumAt: 0.30, HighAt: 0.70}

// TierFor derives the risk tier for a churn probability. Boundary values
// belong to the upper tier: 0.30 is MEDIUM, 0.70 is HIGH.
func (t TierThresholds) TierFor(probability float64) RiskTier {
	switch {
	case probability >= t.HighAt:
		return RiskTierHigh
	case probability >= t.MediumAt:
		return RiskTierMedium
	default:
		return RiskTierLow
	}
}

// RiskTierFromString reconstructs a RiskTier from its string representation.
func RiskTierFromString(s string) (RiskTier, error) {
	switch s {
	case "LOW":
		return RiskTierLow, nil
	case "MEDIUM":
		return RiskTierMedium, nil
	case "HIGH":
		return RiskTierHigh, nil
	default:
		return RiskTier{}, fmt.Errorf("invalid risk tier: %s", s)
	}
}

// String returns the string representation.
func (r RiskTier) String() string {
	return r.value
}

// Label returns the French display label used on the reporting surface.
func (r RiskTier) Label() string {
	switch r {
	case RiskTierLow:
		return "Faible"
	case RiskTierMedium:
		return "Moyen"
	case RiskTierHigh:
		return "Élevé"
	default:
		return ""
	}
}

// IsZero returns true if the RiskTier has not been set.
func (r RiskTier) IsZero() bool {
	return r.value == ""
}

// Equal checks equality with another RiskTier.
func (r RiskTier) Equal(other RiskTier) bool {
	return r.value == other.value
}
