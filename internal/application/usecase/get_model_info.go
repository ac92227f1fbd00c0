package usecase

import (
	"context"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
	"github.com/FereolKpavode/CHURN/internal/domain/port"
)

// GetModelInfo exposes the loaded classifier's identity and feature contract.
type GetModelInfo struct {
	provider port.ClassifierProvider
}

// NewGetModelInfo creates a new GetModelInfo use case.
func NewGetModelInfo(provider port.ClassifierProvider) *GetModelInfo {
	return &GetModelInfo{provider: provider}
}

// Execute loads the classifier (memoized) and describes it.
func (uc *GetModelInfo) Execute(ctx context.Context) (dto.ModelInfoResponse, error) {
	classifier, err := uc.provider.Load(ctx)
	if err != nil {
		return dto.ModelInfoResponse{}, err
	}

	features := classifier.FeatureNames()
	return dto.ModelInfoResponse{
		ModelType:   classifier.ModelType(),
		Features:    features,
		NumFeatures: len(features),
	}, nil
}
