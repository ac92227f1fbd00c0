package model

import (
	"fmt"
	"sort"
)

// FeatureContribution is one feature's share of the gap between the baseline
// expected probability and the final predicted probability.
type FeatureContribution struct {
	Name         string
	Value        float64 // raw encoded input value for this feature
	Contribution float64 // signed attribution
}

// Attribution explains a single prediction: the baseline expected probability
// plus the per-feature contributions reconstruct the final probability.
type Attribution struct {
	Baseline      float64
	Contributions []FeatureContribution // in frozen feature order
}

// Probability reconstructs the final churn probability as
// baseline + sum of contributions. Callers must verify it matches the
// predictor's own probability within floating tolerance.
func (a *Attribution) Probability() float64 {
	p := a.Baseline
	for _, c := range a.Contributions {
		p += c.Contribution
	}
	return p
}

// Ranked returns the contributions ordered by absolute magnitude descending,
// ties broken by the original feature order.
func (a *Attribution) Ranked() []FeatureContribution {
	ranked := make([]FeatureContribution, len(a.Contributions))
	copy(ranked, a.Contributions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return abs(ranked[i].Contribution) > abs(ranked[j].Contribution)
	})
	return ranked
}

// TopInterpretations renders natural-language readings of the n strongest
// contributions. strongAt is the absolute magnitude above which a
// contribution is phrased as strong rather than moderate.
func (a *Attribution) TopInterpretations(n int, strongAt float64) []string {
	ranked := a.Ranked()
	if n > len(ranked) {
		n = len(ranked)
	}

	out := make([]string, 0, n)
	for _, c := range ranked[:n] {
		impact := "augmente"
		if c.Contribution < 0 {
			impact = "diminue"
		}
		magnitude := "modérément"
		if abs(c.Contribution) > strongAt {
			magnitude = "fortement"
		}

		var phrase string
		switch c.Name {
		case "age":
			phrase = fmt.Sprintf("L'âge (%.0f ans) %s %s le risque de churn", c.Value, magnitude, impact)
		case "creditscore":
			phrase = fmt.Sprintf("Le score de crédit (%.0f) %s %s le risque de churn", c.Value, magnitude, impact)
		case "satisfaction score":
			phrase = fmt.Sprintf("Le score de satisfaction (%.0f/5) %s %s le risque de churn", c.Value, magnitude, impact)
		case "numofproducts":
			phrase = fmt.Sprintf("Le nombre de produits (%.0f) %s %s le risque de churn", c.Value, magnitude, impact)
		case "balance":
			phrase = fmt.Sprintf("Le solde (%.0f€) %s %s le risque de churn", c.Value, magnitude, impact)
		default:
			phrase = fmt.Sprintf("%s (%g) %s %s le risque de churn", c.Name, c.Value, magnitude, impact)
		}
		out = append(out, phrase)
	}
	return out
}

// ImportanceComparison contrasts the model's global feature importances with
// the mean absolute attribution observed over a background sample. Both
// series are normalized to their own maxima before comparison.
type ImportanceComparison struct {
	Features              []string
	ModelImportance       []float64
	AttributionImportance []float64
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
