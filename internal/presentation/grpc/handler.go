package grpc

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
	"github.com/FereolKpavode/CHURN/internal/application/usecase"
	"github.com/FereolKpavode/CHURN/internal/domain/fault"
	"github.com/FereolKpavode/CHURN/internal/infrastructure/csvio"
	"github.com/FereolKpavode/CHURN/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// Compile-time assertion that ChurnServiceHandler implements ChurnServiceServer.
var _ ChurnServiceServer = (*ChurnServiceHandler)(nil)

// ChurnServiceHandler implements the gRPC ChurnServiceServer interface.
type ChurnServiceHandler struct {
	UnimplementedChurnServiceServer
	predictChurn *usecase.PredictChurn
	explain      *usecase.ExplainPrediction
	runBatch     *usecase.RunBatch
	modelInfo    *usecase.GetModelInfo
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewChurnServiceHandler creates a new gRPC handler.
func NewChurnServiceHandler(
	predictChurn *usecase.PredictChurn,
	explain *usecase.ExplainPrediction,
	runBatch *usecase.RunBatch,
	modelInfo *usecase.GetModelInfo,
	logger *slog.Logger,
) *ChurnServiceHandler {
	return &ChurnServiceHandler{
		predictChurn: predictChurn,
		explain:      explain,
		runBatch:     runBatch,
		modelInfo:    modelInfo,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Proto-aligned request/response message types.

// CustomerMsg represents the proto Customer message: one customer's raw
// attributes in the French label vocabulary.
type CustomerMsg struct {
	CreditScore       int     `json:"credit_score"`
	Age               int     `json:"age"`
	Tenure            int     `json:"tenure"`
	Balance           float64 `json:"balance"`
	NumOfProducts     int     `json:"num_of_products"`
	EstimatedSalary   float64 `json:"estimated_salary"`
	SatisfactionScore int     `json:"satisfaction_score"`
	PointEarned       int     `json:"point_earned"`
	Gender            string  `json:"gender"`
	Country           string  `json:"country"`
	Category          string  `json:"category"`
	HasCreditCard     string  `json:"has_credit_card"`
	IsActiveMember    string  `json:"is_active_member"`
	Complain          string  `json:"complain"`
}

func (m *CustomerMsg) toAttributes() dto.CustomerAttributes {
	return dto.CustomerAttributes{
		CreditScore:       m.CreditScore,
		Age:               m.Age,
		Tenure:            m.Tenure,
		Balance:           m.Balance,
		NumOfProducts:     m.NumOfProducts,
		EstimatedSalary:   m.EstimatedSalary,
		SatisfactionScore: m.SatisfactionScore,
		PointEarned:       m.PointEarned,
		Gender:            m.Gender,
		Country:           m.Country,
		Category:          m.Category,
		HasCreditCard:     m.HasCreditCard,
		IsActiveMember:    m.IsActiveMember,
		Complain:          m.Complain,
	}
}

// PredictRequest represents the proto PredictRequest message.
type PredictRequest struct {
	Customer *CustomerMsg `json:"customer"`
}

// PredictionMsg represents the proto Prediction message.
type PredictionMsg struct {
	PredictionID string  `json:"prediction_id"`
	Label        int32   `json:"label"`
	Probability  float64 `json:"probability"`
	RiskTier     string  `json:"risk_tier"`
	RiskLabel    string  `json:"risk_label"`
	Decision     string  `json:"decision"`
	WillChurn    bool    `json:"will_churn"`
	PredictedAt  string  `json:"predicted_at"`
}

// PredictResponse represents the proto PredictResponse message. ExportCsv is
// the ready-to-save single-record CSV export of the prediction.
type PredictResponse struct {
	Prediction *PredictionMsg `json:"prediction"`
	ExportCsv  string         `json:"export_csv"`
}

// ExplainRequest represents the proto ExplainRequest message.
type ExplainRequest struct {
	Customer *CustomerMsg `json:"customer"`
}

// AttributionMsg represents the proto Attribution message.
type AttributionMsg struct {
	Feature      string  `json:"feature"`
	Value        float64 `json:"value"`
	Contribution float64 `json:"contribution"`
}

// ExplainResponse represents the proto ExplainResponse message.
type ExplainResponse struct {
	Available       bool              `json:"available"`
	Baseline        float64           `json:"baseline"`
	Probability     float64           `json:"probability"`
	Attributions    []*AttributionMsg `json:"attributions"`
	Interpretations []string          `json:"interpretations"`
}

// CompareImportancesRequest represents the proto CompareImportancesRequest message.
type CompareImportancesRequest struct{}

// CompareImportancesResponse represents the proto CompareImportancesResponse message.
type CompareImportancesResponse struct {
	Available             bool      `json:"available"`
	Features              []string  `json:"features"`
	ModelImportance       []float64 `json:"model_importance"`
	AttributionImportance []float64 `json:"attribution_importance"`
}

// RunBatchRequest represents the proto RunBatchRequest message. CsvContent is
// the raw semicolon-separated file, header included.
type RunBatchRequest struct {
	CsvContent string `json:"csv_content"`
}

// BatchResultMsg represents the proto BatchResult message.
type BatchResultMsg struct {
	Line        int32   `json:"line"`
	Age         int32   `json:"age"`
	Country     string  `json:"country"`
	Category    string  `json:"category"`
	CreditScore int32   `json:"credit_score"`
	Prediction  int32   `json:"prediction"`
	Probability float64 `json:"probability"`
	RiskTier    string  `json:"risk_tier"`
	RiskLabel   string  `json:"risk_label"`
	Decision    string  `json:"decision"`
}

// BatchErrorMsg represents the proto BatchError message.
type BatchErrorMsg struct {
	Line     int32    `json:"line"`
	Messages []string `json:"messages"`
}

// BatchSummaryMsg represents the proto BatchSummary message.
type BatchSummaryMsg struct {
	Processed  int32   `json:"processed"`
	Errored    int32   `json:"errored"`
	ChurnCount int32   `json:"churn_count"`
	ChurnRate  float64 `json:"churn_rate"`
}

// RunBatchResponse represents the proto RunBatchResponse message. ResultsCsv
// is the scored rows rendered as a downloadable file.
type RunBatchResponse struct {
	Results    []*BatchResultMsg `json:"results"`
	Errors     []*BatchErrorMsg  `json:"errors"`
	Summary    *BatchSummaryMsg  `json:"summary"`
	ResultsCsv string            `json:"results_csv"`
}

// GetModelInfoRequest represents the proto GetModelInfoRequest message.
type GetModelInfoRequest struct{}

// GetModelInfoResponse represents the proto GetModelInfoResponse message.
type GetModelInfoResponse struct {
	ModelType   string   `json:"model_type"`
	Features    []string `json:"features"`
	NumFeatures int32    `json:"n_features"`
}

// GetTemplateRequest represents the proto GetTemplateRequest message.
type GetTemplateRequest struct{}

// GetTemplateResponse represents the proto GetTemplateResponse message.
type GetTemplateResponse struct {
	CsvContent string `json:"csv_content"`
}

// Predict handles a single-customer scoring request.
func (h *ChurnServiceHandler) Predict(ctx context.Context, req *PredictRequest) (*PredictResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil || req.Customer == nil {
		return nil, status.Error(codes.InvalidArgument, "customer is required")
	}

	attrs := req.Customer.toAttributes()
	if err := h.validate.Struct(attrs); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid customer: %v", err)
	}

	result, err := h.predictChurn.Execute(ctx, dto.PredictRequest{Attributes: attrs})
	if err != nil {
		return nil, h.statusFromError("predict", err)
	}

	var export bytes.Buffer
	if err := csvio.WritePrediction(&export, attrs, result); err != nil {
		h.logger.Warn("failed to render prediction export", slog.String("error", err.Error()))
	}

	return &PredictResponse{
		Prediction: predictionMsg(result),
		ExportCsv:  export.String(),
	}, nil
}

// Explain handles an attribution request.
func (h *ChurnServiceHandler) Explain(ctx context.Context, req *ExplainRequest) (*ExplainResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst); err != nil {
		return nil, err
	}
	if req == nil || req.Customer == nil {
		return nil, status.Error(codes.InvalidArgument, "customer is required")
	}

	attrs := req.Customer.toAttributes()
	if err := h.validate.Struct(attrs); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid customer: %v", err)
	}

	result, err := h.explain.Execute(ctx, dto.ExplainRequest{Attributes: attrs})
	if err != nil {
		return nil, h.statusFromError("explain", err)
	}

	attributions := make([]*AttributionMsg, 0, len(result.Attributions))
	for _, a := range result.Attributions {
		attributions = append(attributions, &AttributionMsg{
			Feature:      a.Feature,
			Value:        a.Value,
			Contribution: a.Contribution,
		})
	}

	return &ExplainResponse{
		Available:       result.Available,
		Baseline:        result.Baseline,
		Probability:     result.Probability,
		Attributions:    attributions,
		Interpretations: result.Interpretations,
	}, nil
}

// CompareImportances handles a global importance comparison request.
func (h *ChurnServiceHandler) CompareImportances(ctx context.Context, req *CompareImportancesRequest) (*CompareImportancesResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst); err != nil {
		return nil, err
	}

	result, err := h.explain.Importances(ctx)
	if err != nil {
		return nil, h.statusFromError("compare importances", err)
	}

	return &CompareImportancesResponse{
		Available:             result.Available,
		Features:              result.Features,
		ModelImportance:       result.ModelImportance,
		AttributionImportance: result.AttributionImportance,
	}, nil
}

// RunBatch handles a whole-file scoring request.
func (h *ChurnServiceHandler) RunBatch(ctx context.Context, req *RunBatchRequest) (*RunBatchResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}
	if req == nil || req.CsvContent == "" {
		return nil, status.Error(codes.InvalidArgument, "csv_content is required")
	}

	rows, badRows, err := csvio.ReadBatch(strings.NewReader(req.CsvContent))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid batch file: %v", err)
	}

	result, err := h.runBatch.Execute(ctx, rows)
	if err != nil {
		return nil, h.statusFromError("batch", err)
	}

	// Merge rows rejected at parse time with rows rejected at scoring time.
	result.Errors = append(result.Errors, badRows...)
	result.Summary.Errored += len(badRows)

	var resultsCsv bytes.Buffer
	if err := csvio.WriteResults(&resultsCsv, result.Results); err != nil {
		h.logger.Warn("failed to render batch results file", slog.String("error", err.Error()))
	}

	resp := &RunBatchResponse{
		Results: make([]*BatchResultMsg, 0, len(result.Results)),
		Errors:  make([]*BatchErrorMsg, 0, len(result.Errors)),
		Summary: &BatchSummaryMsg{
			Processed:  int32(result.Summary.Processed),
			Errored:    int32(result.Summary.Errored),
			ChurnCount: int32(result.Summary.ChurnCount),
			ChurnRate:  result.Summary.ChurnRate,
		},
		ResultsCsv: resultsCsv.String(),
	}
	for _, r := range result.Results {
		resp.Results = append(resp.Results, &BatchResultMsg{
			Line:        int32(r.Line),
			Age:         int32(r.Age),
			Country:     r.Country,
			Category:    r.Category,
			CreditScore: int32(r.CreditScore),
			Prediction:  int32(r.Prediction),
			Probability: r.Probability,
			RiskTier:    r.RiskTier,
			RiskLabel:   r.RiskLabel,
			Decision:    r.Decision,
		})
	}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, &BatchErrorMsg{
			Line:     int32(e.Line),
			Messages: e.Messages,
		})
	}

	return resp, nil
}

// GetModelInfo handles a model introspection request.
func (h *ChurnServiceHandler) GetModelInfo(ctx context.Context, req *GetModelInfoRequest) (*GetModelInfoResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	result, err := h.modelInfo.Execute(ctx)
	if err != nil {
		return nil, h.statusFromError("model info", err)
	}

	return &GetModelInfoResponse{
		ModelType:   result.ModelType,
		Features:    result.Features,
		NumFeatures: int32(result.NumFeatures),
	}, nil
}

// GetTemplate handles a batch template download request.
func (h *ChurnServiceHandler) GetTemplate(ctx context.Context, req *GetTemplateRequest) (*GetTemplateResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := csvio.WriteTemplate(&buf); err != nil {
		h.logger.Error("failed to render template", slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &GetTemplateResponse{CsvContent: buf.String()}, nil
}

// statusFromError maps domain errors to gRPC status codes. Expected domain
// problems carry their message to the caller; anything else stays generic.
func (h *ChurnServiceHandler) statusFromError(op string, err error) error {
	var (
		validationErr *fault.ValidationError
		encodingErr   *fault.EncodingError
		predictionErr *fault.PredictionError
	)
	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.As(err, &encodingErr):
		return status.Error(codes.InvalidArgument, encodingErr.Error())
	case errors.As(err, &predictionErr):
		return status.Error(codes.FailedPrecondition, predictionErr.Error())
	default:
		h.logger.Error("operation failed",
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
		return status.Error(codes.Internal, "internal error")
	}
}

func predictionMsg(r dto.PredictionResponse) *PredictionMsg {
	return &PredictionMsg{
		PredictionID: r.PredictionID.String(),
		Label:        int32(r.Label),
		Probability:  r.Probability,
		RiskTier:     r.RiskTier,
		RiskLabel:    r.RiskLabel,
		Decision:     r.Decision,
		WillChurn:    r.WillChurn,
		PredictedAt:  r.PredictedAt.Format(time.RFC3339),
	}
}
