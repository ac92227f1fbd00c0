package dto

import "github.com/FereolKpavode/CHURN/internal/domain/model"

// ExplainRequest is the input DTO for the ExplainPrediction use case.
type ExplainRequest struct {
	Attributes CustomerAttributes `json:"attributes"`
}

// FeatureAttribution is one feature's contribution in the response.
type FeatureAttribution struct {
	Feature      string  `json:"feature"`
	Value        float64 `json:"value"`
	Contribution float64 `json:"contribution"`
}

// ExplanationResponse carries the attribution for one customer. Available is
// false when the attribution capability is absent; the rest of the fields
// are only meaningful when it is true.
type ExplanationResponse struct {
	Available       bool                 `json:"available"`
	Baseline        float64              `json:"baseline"`
	Probability     float64              `json:"probability"`
	Attributions    []FeatureAttribution `json:"attributions"`
	Interpretations []string             `json:"interpretations"`
}

// FromAttribution maps a domain attribution to the response DTO, ranking the
// contributions by absolute magnitude and rendering the top interpretations.
func FromAttribution(a *model.Attribution, topN int, strongAt float64) ExplanationResponse {
	ranked := a.Ranked()
	attributions := make([]FeatureAttribution, 0, len(ranked))
	for _, c := range ranked {
		attributions = append(attributions, FeatureAttribution{
			Feature:      c.Name,
			Value:        c.Value,
			Contribution: c.Contribution,
		})
	}

	return ExplanationResponse{
		Available:       true,
		Baseline:        a.Baseline,
		Probability:     a.Probability(),
		Attributions:    attributions,
		Interpretations: a.TopInterpretations(topN, strongAt),
	}
}

// ImportanceComparisonResponse contrasts global model importances with mean
// absolute attributions, both normalized to their own maxima.
type ImportanceComparisonResponse struct {
	Available             bool      `json:"available"`
	Features              []string  `json:"features"`
	ModelImportance       []float64 `json:"model_importance"`
	AttributionImportance []float64 `json:"attribution_importance"`
}

// FromImportanceComparison maps the domain comparison to the response DTO.
func FromImportanceComparison(c *model.ImportanceComparison) ImportanceComparisonResponse {
	return ImportanceComparisonResponse{
		Available:             true,
		Features:              c.Features,
		ModelImportance:       c.ModelImportance,
		AttributionImportance: c.AttributionImportance,
	}
}
