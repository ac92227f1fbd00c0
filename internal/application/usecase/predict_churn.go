// Package usecase orchestrates the application flows of the churn service:
// single prediction, explanation, batch scoring and model introspection.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
	"github.com/FereolKpavode/CHURN/internal/domain/fault"
	"github.com/FereolKpavode/CHURN/internal/domain/model"
	"github.com/FereolKpavode/CHURN/internal/domain/port"
	"github.com/FereolKpavode/CHURN/internal/domain/service"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
)

// PredictChurn is the use case scoring one customer.
type PredictChurn struct {
	provider   port.ClassifierProvider
	publisher  port.EventPublisher
	validator  *service.Validator
	thresholds valueobject.TierThresholds
	logger     *slog.Logger
}

// NewPredictChurn creates a new PredictChurn use case.
func NewPredictChurn(
	provider port.ClassifierProvider,
	publisher port.EventPublisher,
	validator *service.Validator,
	thresholds valueobject.TierThresholds,
	logger *slog.Logger,
) *PredictChurn {
	return &PredictChurn{
		provider:   provider,
		publisher:  publisher,
		validator:  validator,
		thresholds: thresholds,
		logger:     logger,
	}
}

// Execute validates, encodes and scores one customer, then publishes the
// collected domain events. Event delivery failures are logged and swallowed:
// the prediction result is already final when publication happens.
func (uc *PredictChurn) Execute(ctx context.Context, req dto.PredictRequest) (dto.PredictionResponse, error) {
	start := time.Now()

	prediction, err := uc.Score(ctx, req.Attributes)
	if err != nil {
		predictionFailuresTotal.WithLabelValues(failureKind(err)).Inc()
		return dto.PredictionResponse{}, err
	}

	if evts := prediction.ClearEvents(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			uc.logger.Warn("failed to publish prediction events",
				slog.String("prediction_id", prediction.ID().String()),
				slog.String("error", err.Error()),
			)
		}
	}

	predictionsTotal.WithLabelValues(prediction.Decision(), prediction.RiskTier().String()).Inc()
	predictionDuration.Observe(time.Since(start).Seconds())

	uc.logger.Info("customer scored",
		slog.String("prediction_id", prediction.ID().String()),
		slog.Float64("probability", prediction.Probability()),
		slog.String("risk_tier", prediction.RiskTier().String()),
	)

	return dto.FromPrediction(prediction), nil
}

// Score runs the scoring pipeline without publishing events. Batch scoring
// uses it directly so a thousand-row file does not flood the event topic.
func (uc *PredictChurn) Score(ctx context.Context, attrs dto.CustomerAttributes) (*model.ChurnPrediction, error) {
	raw, err := attrs.ToRawInput()
	if err != nil {
		return nil, err
	}

	if msgs := uc.validator.Validate(raw); len(msgs) > 0 {
		return nil, &fault.ValidationError{Messages: msgs}
	}

	customer, err := model.NewCustomerRecord(raw)
	if err != nil {
		return nil, err
	}

	classifier, err := uc.provider.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := featureContractError(classifier.FeatureNames()); err != nil {
		return nil, err
	}

	features := customer.FeatureVector()
	label, err := classifier.Predict(ctx, features)
	if err != nil {
		return nil, err
	}
	probability, err := classifier.PredictProba(ctx, features)
	if err != nil {
		return nil, err
	}

	return model.NewChurnPrediction(customer, label, probability, uc.thresholds)
}

// featureContractError verifies the model's declared feature set against the
// frozen encoding contract: the names must match position by position, since
// the encoder always emits the same column order. A model with the same names
// permuted would otherwise be scored with a misaligned vector.
func featureContractError(expected []string) error {
	known := make(map[string]struct{}, len(model.FeatureNames))
	for _, name := range model.FeatureNames {
		known[name] = struct{}{}
	}

	var missing []string
	for _, name := range expected {
		if _, ok := known[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &fault.PredictionError{
			Reason:  "encoded features do not cover the model's feature set",
			Missing: missing,
		}
	}

	if len(expected) != model.NumFeatures {
		return &fault.PredictionError{
			Reason: fmt.Sprintf("model declares %d features, encoder emits %d", len(expected), model.NumFeatures),
		}
	}

	for i, name := range expected {
		if name != model.FeatureNames[i] {
			return &fault.PredictionError{
				Reason: fmt.Sprintf("model expects %q at position %d, encoder emits %q", name, i, model.FeatureNames[i]),
			}
		}
	}
	return nil
}

// failureKind maps an error to its metrics label.
func failureKind(err error) string {
	var (
		validationErr *fault.ValidationError
		encodingErr   *fault.EncodingError
		loadErr       *fault.ModelLoadError
		predictionErr *fault.PredictionError
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &encodingErr):
		return "encoding"
	case errors.As(err, &loadErr):
		return "model_load"
	case errors.As(err, &predictionErr):
		return "prediction"
	default:
		return "internal"
	}
}
