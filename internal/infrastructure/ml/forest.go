// Package ml loads and serves the externally-trained churn classifier.
// The artifact is a random forest exported to JSON at training time; this
// package only evaluates it, it never trains or updates it.
package ml

import (
	"context"
	"fmt"

	"github.com/FereolKpavode/CHURN/internal/domain/fault"
)

// TreeNode is one node of an exported decision tree. A negative Feature
// marks a leaf, in which case Value holds the churn-class probability.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Tree is a single decision tree, nodes indexed from the root at 0.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// RandomForest is the deserialized model artifact. It exposes the class
// probability as the average of the per-tree leaf probabilities, the way the
// training-side ensemble voted.
type RandomForest struct {
	Type        string    `json:"model_type"`
	Features    []string  `json:"features"`
	Importances []float64 `json:"feature_importances"`
	Trees       []Tree    `json:"trees"`
}

// validate checks structural consistency of a freshly-deserialized artifact.
func (f *RandomForest) validate() error {
	if len(f.Features) == 0 {
		return fmt.Errorf("artifact declares no features")
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("artifact contains no trees")
	}
	if len(f.Importances) != 0 && len(f.Importances) != len(f.Features) {
		return fmt.Errorf("artifact has %d importances for %d features", len(f.Importances), len(f.Features))
	}
	for ti, tree := range f.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("tree %d is empty", ti)
		}
		for ni, node := range tree.Nodes {
			if node.Feature >= len(f.Features) {
				return fmt.Errorf("tree %d node %d splits on unknown feature %d", ti, ni, node.Feature)
			}
			// Children must come after their parent so every walk makes
			// progress and terminates; exports emit nodes in that order.
			if node.Feature >= 0 && (node.Left <= ni || node.Left >= len(tree.Nodes) ||
				node.Right <= ni || node.Right >= len(tree.Nodes)) {
				return fmt.Errorf("tree %d node %d has out-of-range or non-advancing children", ti, ni)
			}
		}
	}
	return nil
}

// PredictProba returns the probability of the positive (churn) class for one
// encoded feature vector shaped exactly as Features.
func (f *RandomForest) PredictProba(_ context.Context, features []float64) (float64, error) {
	if len(features) != len(f.Features) {
		return 0, &fault.PredictionError{
			Reason: fmt.Sprintf("expected %d features, got %d", len(f.Features), len(features)),
		}
	}

	var sum float64
	for i := range f.Trees {
		sum += f.Trees[i].evaluate(features)
	}
	return sum / float64(len(f.Trees)), nil
}

// Predict returns the binary class label: 1 (churn) when the ensemble's
// churn probability reaches 0.5, 0 (retain) otherwise.
func (f *RandomForest) Predict(ctx context.Context, features []float64) (int, error) {
	p, err := f.PredictProba(ctx, features)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

// FeatureNames returns the frozen training-time feature order.
func (f *RandomForest) FeatureNames() []string {
	return append([]string(nil), f.Features...)
}

// ModelType returns the human-readable model type name from the artifact.
func (f *RandomForest) ModelType() string {
	if f.Type == "" {
		return "RandomForestClassifier"
	}
	return f.Type
}

// FeatureImportances returns the model's global per-feature importances.
func (f *RandomForest) FeatureImportances() []float64 {
	return append([]float64(nil), f.Importances...)
}

// evaluate walks one tree from the root to a leaf. Splits follow the
// training convention: feature value <= threshold goes left.
func (t *Tree) evaluate(features []float64) float64 {
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.Feature < 0 {
			return node.Value
		}
		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}
