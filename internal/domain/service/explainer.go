package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/FereolKpavode/CHURN/internal/domain/model"
	"github.com/FereolKpavode/CHURN/internal/domain/port"
)

// ErrExplainerUnavailable signals that the attribution capability is absent,
// either disabled by configuration or because the loaded model does not
// expose what attribution needs. It is a degraded-but-functional mode, not a
// failure: predictions keep working without explanations.
var ErrExplainerUnavailable = errors.New("explainer unavailable")

// ExplainerConfig tunes the attribution engine.
type ExplainerConfig struct {
	Enabled        bool
	BackgroundSize int   // synthetic background rows
	Permutations   int   // feature-order permutations per explanation
	Seed           int64 // background and permutation seed
	SampleSize     int   // rows drawn for the importance comparison
}

// DefaultExplainerConfig mirrors the settings the attribution layer was
// tuned with.
var DefaultExplainerConfig = ExplainerConfig{
	Enabled:        true,
	BackgroundSize: 100,
	Permutations:   8,
	Seed:           42,
	SampleSize:     20,
}

// Explainer computes model-agnostic per-feature attributions around the
// classifier's probability output. The engine (classifier handle, background
// sample, baseline) is built lazily exactly once and reused for the process
// lifetime; rebuilding it per request would dominate the request cost.
type Explainer struct {
	provider port.ClassifierProvider
	cfg      ExplainerConfig
	logger   *slog.Logger

	once       sync.Once
	classifier port.Classifier
	background [][]float64
	baseline   float64
	initErr    error
}

// NewExplainer creates an Explainer bound to the given classifier provider.
func NewExplainer(provider port.ClassifierProvider, cfg ExplainerConfig, logger *slog.Logger) *Explainer {
	return &Explainer{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
	}
}

// ensureEngine lazily initializes the attribution engine: it resolves the
// classifier, generates the background sample and computes the baseline
// expected probability. Initialization is idempotent; the first caller pays
// the cost and a failure sticks for subsequent calls.
func (e *Explainer) ensureEngine(ctx context.Context) error {
	e.once.Do(func() {
		if !e.cfg.Enabled {
			e.initErr = ErrExplainerUnavailable
			return
		}

		classifier, err := e.provider.Load(ctx)
		if err != nil {
			e.initErr = err
			return
		}
		e.classifier = classifier

		e.logger.Info("building attribution engine",
			slog.Int("background_size", e.cfg.BackgroundSize),
			slog.Int("permutations", e.cfg.Permutations),
		)

		e.background = GenerateBackgroundSample(e.cfg.BackgroundSize, e.cfg.Seed)

		var sum float64
		for _, row := range e.background {
			p, err := classifier.PredictProba(ctx, row)
			if err != nil {
				e.initErr = fmt.Errorf("baseline estimation: %w", err)
				return
			}
			sum += p
		}
		e.baseline = sum / float64(len(e.background))

		e.logger.Info("attribution engine ready", slog.Float64("baseline", e.baseline))
	})
	return e.initErr
}

// Explain computes the per-feature attribution for one customer. The
// returned attribution satisfies baseline + sum(contributions) == final
// probability up to floating accumulation error, which callers verify
// against the predictor's own probability.
func (e *Explainer) Explain(ctx context.Context, customer *model.CustomerRecord) (*model.Attribution, error) {
	if err := e.ensureEngine(ctx); err != nil {
		return nil, err
	}

	x := customer.FeatureVector()
	phi, err := e.attribute(ctx, x)
	if err != nil {
		return nil, err
	}

	contributions := make([]model.FeatureContribution, model.NumFeatures)
	for i, name := range model.FeatureNames {
		contributions[i] = model.FeatureContribution{
			Name:         name,
			Value:        x[i],
			Contribution: phi[i],
		}
	}

	return &model.Attribution{
		Baseline:      e.baseline,
		Contributions: contributions,
	}, nil
}

// attribute estimates Shapley-style contributions by walking random feature
// orderings from each background row towards x and accumulating the marginal
// probability changes. Averaged over all (permutation, background row)
// pairs the contributions telescope exactly to probability(x) - baseline.
func (e *Explainer) attribute(ctx context.Context, x []float64) ([]float64, error) {
	rng := rand.New(rand.NewSource(e.cfg.Seed))

	phi := make([]float64, model.NumFeatures)
	pairs := 0

	z := make([]float64, model.NumFeatures)
	for k := 0; k < e.cfg.Permutations; k++ {
		order := rng.Perm(model.NumFeatures)

		for _, row := range e.background {
			copy(z, row)
			prev, err := e.classifier.PredictProba(ctx, z)
			if err != nil {
				return nil, fmt.Errorf("attribution walk: %w", err)
			}

			for _, fi := range order {
				z[fi] = x[fi]
				cur, err := e.classifier.PredictProba(ctx, z)
				if err != nil {
					return nil, fmt.Errorf("attribution walk: %w", err)
				}
				phi[fi] += cur - prev
				prev = cur
			}
			pairs++
		}
	}

	for i := range phi {
		phi[i] /= float64(pairs)
	}
	return phi, nil
}

// CompareImportances contrasts the model's global feature importances with
// the mean absolute attribution over a fresh draw from the background
// sample. Both series are normalized to their own maxima so their shapes can
// be compared directly.
func (e *Explainer) CompareImportances(ctx context.Context) (*model.ImportanceComparison, error) {
	if err := e.ensureEngine(ctx); err != nil {
		return nil, err
	}

	reporter, ok := e.classifier.(port.ImportanceReporter)
	if !ok {
		return nil, ErrExplainerUnavailable
	}

	rng := rand.New(rand.NewSource(e.cfg.Seed + 1))
	meanAbs := make([]float64, model.NumFeatures)

	sampleSize := e.cfg.SampleSize
	if sampleSize > len(e.background) {
		sampleSize = len(e.background)
	}
	for s := 0; s < sampleSize; s++ {
		row := e.background[rng.Intn(len(e.background))]
		phi, err := e.attribute(ctx, row)
		if err != nil {
			return nil, err
		}
		for i, v := range phi {
			if v < 0 {
				v = -v
			}
			meanAbs[i] += v
		}
	}
	for i := range meanAbs {
		meanAbs[i] /= float64(sampleSize)
	}

	return &model.ImportanceComparison{
		Features:              append([]string(nil), model.FeatureNames...),
		ModelImportance:       normalizeToMax(reporter.FeatureImportances()),
		AttributionImportance: normalizeToMax(meanAbs),
	}, nil
}

// normalizeToMax scales a series so its maximum becomes 1. A zero series is
// returned unchanged.
func normalizeToMax(values []float64) []float64 {
	out := make([]float64, len(values))
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		copy(out, values)
		return out
	}
	for i, v := range values {
		out[i] = v / max
	}
	return out
}
