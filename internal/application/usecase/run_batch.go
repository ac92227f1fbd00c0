package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
	"github.com/FereolKpavode/CHURN/internal/domain/fault"
)

// RunBatch scores a whole file of customers. Rows fail independently: a bad
// row is reported with its line number and the rest of the file keeps going.
// Only a model load failure aborts the batch, since no row can succeed
// without the model.
type RunBatch struct {
	predict *PredictChurn
	logger  *slog.Logger
}

// NewRunBatch creates a new RunBatch use case.
func NewRunBatch(predict *PredictChurn, logger *slog.Logger) *RunBatch {
	return &RunBatch{
		predict: predict,
		logger:  logger,
	}
}

// Execute scores every row and aggregates the outcome. The churn rate is
// computed over successfully scored rows only; an all-errored batch reports a
// zero rate rather than dividing by zero.
func (uc *RunBatch) Execute(ctx context.Context, rows []dto.BatchRow) (dto.BatchResponse, error) {
	resp := dto.BatchResponse{
		Results: make([]dto.BatchRowResult, 0, len(rows)),
		Errors:  []dto.BatchRowError{},
	}

	for _, row := range rows {
		prediction, err := uc.predict.Score(ctx, row.Attributes)
		if err != nil {
			var loadErr *fault.ModelLoadError
			if errors.As(err, &loadErr) {
				return dto.BatchResponse{}, err
			}

			batchRowsTotal.WithLabelValues("errored").Inc()
			resp.Errors = append(resp.Errors, dto.BatchRowError{
				Line:     row.Line,
				Messages: rowErrorMessages(err),
			})
			continue
		}

		batchRowsTotal.WithLabelValues("scored").Inc()
		customer := prediction.Customer()
		resp.Results = append(resp.Results, dto.BatchRowResult{
			Line:        row.Line,
			Age:         customer.Age(),
			Country:     customer.Country().Label(),
			Category:    customer.Category().Label(),
			CreditScore: customer.CreditScore(),
			Prediction:  prediction.Label(),
			Probability: prediction.Probability(),
			RiskTier:    prediction.RiskTier().String(),
			RiskLabel:   prediction.RiskTier().Label(),
			Decision:    prediction.Decision(),
		})
		if prediction.WillChurn() {
			resp.Summary.ChurnCount++
		}
	}

	resp.Summary.Processed = len(resp.Results)
	resp.Summary.Errored = len(resp.Errors)
	if resp.Summary.Processed > 0 {
		resp.Summary.ChurnRate = float64(resp.Summary.ChurnCount) / float64(resp.Summary.Processed)
	}

	uc.logger.Info("batch scored",
		slog.Int("rows", len(rows)),
		slog.Int("processed", resp.Summary.Processed),
		slog.Int("errored", resp.Summary.Errored),
		slog.Float64("churn_rate", resp.Summary.ChurnRate),
	)

	return resp, nil
}

// rowErrorMessages flattens a row failure into the human-readable messages
// reported next to the line number.
func rowErrorMessages(err error) []string {
	var validationErr *fault.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Messages
	}
	return []string{err.Error()}
}
