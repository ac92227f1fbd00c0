package port

import (
	"context"

	"github.com/FereolKpavode/CHURN/pkg/events"
)

// Classifier is the port to the externally-trained churn model.
// Feature vectors are shaped exactly as model.FeatureNames, in that order.
type Classifier interface {
	// Predict returns the binary class label (0 = retain, 1 = churn).
	Predict(ctx context.Context, features []float64) (int, error)

	// PredictProba returns the probability of the positive (churn) class.
	PredictProba(ctx context.Context, features []float64) (float64, error)

	// FeatureNames returns the frozen training-time feature order.
	FeatureNames() []string

	// ModelType returns the human-readable model type name.
	ModelType() string
}

// ImportanceReporter is an optional classifier capability exposing the
// model's global per-feature importances, in FeatureNames order. The
// explainer's comparison mode requires it; its absence degrades the
// explainer, it does not fail predictions.
type ImportanceReporter interface {
	FeatureImportances() []float64
}

// ClassifierProvider loads the classifier once and caches the handle for the
// process lifetime. A load failure is returned on every subsequent call
// without retrying.
type ClassifierProvider interface {
	Load(ctx context.Context) (Classifier, error)
}

// EventPublisher is the port for publishing domain events.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}
