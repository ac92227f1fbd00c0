package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
	"github.com/FereolKpavode/CHURN/internal/domain/fault"
	"github.com/FereolKpavode/CHURN/internal/domain/model"
	"github.com/FereolKpavode/CHURN/internal/domain/port"
	"github.com/FereolKpavode/CHURN/internal/domain/service"
)

// reconstructionTolerance bounds the floating accumulation error allowed
// between the attribution sum and the classifier's own probability.
const reconstructionTolerance = 1e-6

// ExplainPrediction is the use case producing a per-feature attribution for
// one customer. An absent attribution capability is not an error; the
// response carries Available=false and the caller falls back to the bare
// prediction.
type ExplainPrediction struct {
	provider  port.ClassifierProvider
	explainer *service.Explainer
	validator *service.Validator
	topN      int
	strongAt  float64
	logger    *slog.Logger
}

// NewExplainPrediction creates a new ExplainPrediction use case.
func NewExplainPrediction(
	provider port.ClassifierProvider,
	explainer *service.Explainer,
	validator *service.Validator,
	topN int,
	strongAt float64,
	logger *slog.Logger,
) *ExplainPrediction {
	return &ExplainPrediction{
		provider:  provider,
		explainer: explainer,
		validator: validator,
		topN:      topN,
		strongAt:  strongAt,
		logger:    logger,
	}
}

// Execute validates the customer, computes the attribution and verifies that
// baseline plus contributions reconstructs the classifier's probability.
func (uc *ExplainPrediction) Execute(ctx context.Context, req dto.ExplainRequest) (dto.ExplanationResponse, error) {
	raw, err := req.Attributes.ToRawInput()
	if err != nil {
		return dto.ExplanationResponse{}, err
	}

	if msgs := uc.validator.Validate(raw); len(msgs) > 0 {
		return dto.ExplanationResponse{}, &fault.ValidationError{Messages: msgs}
	}

	customer, err := model.NewCustomerRecord(raw)
	if err != nil {
		return dto.ExplanationResponse{}, err
	}

	attribution, err := uc.explainer.Explain(ctx, customer)
	if errors.Is(err, service.ErrExplainerUnavailable) {
		uc.logger.Info("explainer unavailable, degrading gracefully")
		return dto.ExplanationResponse{Available: false}, nil
	}
	if err != nil {
		return dto.ExplanationResponse{}, err
	}

	classifier, err := uc.provider.Load(ctx)
	if err != nil {
		return dto.ExplanationResponse{}, err
	}
	probability, err := classifier.PredictProba(ctx, customer.FeatureVector())
	if err != nil {
		return dto.ExplanationResponse{}, err
	}

	if diff := math.Abs(attribution.Probability() - probability); diff > reconstructionTolerance {
		return dto.ExplanationResponse{}, &fault.PredictionError{
			Reason: "attribution does not reconstruct the predicted probability",
		}
	}

	return dto.FromAttribution(attribution, uc.topN, uc.strongAt), nil
}

// Importances contrasts the model's global feature importances with the mean
// absolute attribution over a background draw. Absence of either capability
// degrades to Available=false.
func (uc *ExplainPrediction) Importances(ctx context.Context) (dto.ImportanceComparisonResponse, error) {
	comparison, err := uc.explainer.CompareImportances(ctx)
	if errors.Is(err, service.ErrExplainerUnavailable) {
		uc.logger.Info("importance comparison unavailable, degrading gracefully")
		return dto.ImportanceComparisonResponse{Available: false}, nil
	}
	if err != nil {
		return dto.ImportanceComparisonResponse{}, err
	}

	return dto.FromImportanceComparison(comparison), nil
}
