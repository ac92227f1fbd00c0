package ml

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/FereolKpavode/CHURN/internal/domain/fault"
	"github.com/FereolKpavode/CHURN/internal/domain/port"
)

// Loader loads the model artifact from disk exactly once and caches the
// handle for the process lifetime. The initialization is guarded so
// concurrent first callers trigger a single load; a failed load sticks and
// is returned to every caller without retrying.
type Loader struct {
	path   string
	logger *slog.Logger

	once       sync.Once
	classifier port.Classifier
	err        error
}

// Compile-time assertion that Loader implements port.ClassifierProvider.
var _ port.ClassifierProvider = (*Loader)(nil)

// NewLoader creates a Loader for the artifact at the given path.
func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{
		path:   path,
		logger: logger,
	}
}

// Load returns the memoized classifier handle, reading and validating the
// artifact on first call.
func (l *Loader) Load(_ context.Context) (port.Classifier, error) {
	l.once.Do(func() {
		l.logger.Info("loading model artifact", slog.String("path", l.path))

		data, err := os.ReadFile(l.path)
		if err != nil {
			l.err = &fault.ModelLoadError{Path: l.path, Err: err}
			l.logger.Error("model artifact not readable", slog.String("error", err.Error()))
			return
		}

		var forest RandomForest
		if err := json.Unmarshal(data, &forest); err != nil {
			l.err = &fault.ModelLoadError{Path: l.path, Err: fmt.Errorf("malformed artifact: %w", err)}
			l.logger.Error("model artifact malformed", slog.String("error", err.Error()))
			return
		}

		if err := forest.validate(); err != nil {
			l.err = &fault.ModelLoadError{Path: l.path, Err: err}
			l.logger.Error("model artifact inconsistent", slog.String("error", err.Error()))
			return
		}

		l.classifier = &forest
		l.logger.Info("model loaded",
			slog.String("model_type", forest.ModelType()),
			slog.Int("features", len(forest.Features)),
			slog.Int("trees", len(forest.Trees)),
		)
	})

	if l.err != nil {
		return nil, l.err
	}
	return l.classifier, nil
}
