package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FereolKpavode/CHURN/internal/domain/fault"
	"github.com/FereolKpavode/CHURN/internal/domain/model"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
)

// CustomerAttributes is the boundary shape of one customer's raw attributes.
// Categorical fields carry the raw French vocabulary (Oui/Non, Homme/Femme,
// France/Allemagne/Espagne, RUBIS/SILVER/GOLD/PLATINUM).
type CustomerAttributes struct {
	CreditScore       int     `json:"credit_score"`
	Age               int     `json:"age"`
	Tenure            int     `json:"tenure"`
	Balance           float64 `json:"balance"`
	NumOfProducts     int     `json:"num_of_products"`
	EstimatedSalary   float64 `json:"estimated_salary"`
	SatisfactionScore int     `json:"satisfaction_score"`
	PointEarned       int     `json:"point_earned"`
	Gender            string  `json:"gender" validate:"required"`
	Country           string  `json:"country" validate:"required"`
	Category          string  `json:"category" validate:"required"`
	HasCreditCard     string  `json:"has_credit_card" validate:"required"`
	IsActiveMember    string  `json:"is_active_member" validate:"required"`
	Complain          string  `json:"complain" validate:"required"`
}

// ToRawInput parses the raw vocabulary into the structured domain input.
// Unknown labels surface as EncodingError naming the offending field.
func (a CustomerAttributes) ToRawInput() (model.RawCustomerInput, error) {
	var in model.RawCustomerInput

	gender, err := valueobject.GenderFromLabel(a.Gender)
	if err != nil && a.Gender != "" {
		return in, &fault.EncodingError{Field: "gender", Err: err}
	}
	country, err := valueobject.CountryFromLabel(a.Country)
	if err != nil && a.Country != "" {
		return in, &fault.EncodingError{Field: "country", Err: err}
	}
	category, err := valueobject.CategoryFromLabel(a.Category)
	if err != nil && a.Category != "" {
		return in, &fault.EncodingError{Field: "category", Err: err}
	}
	hasCard, err := valueobject.BinaryChoiceFromLabel(a.HasCreditCard)
	if err != nil && a.HasCreditCard != "" {
		return in, &fault.EncodingError{Field: "has_credit_card", Err: err}
	}
	active, err := valueobject.BinaryChoiceFromLabel(a.IsActiveMember)
	if err != nil && a.IsActiveMember != "" {
		return in, &fault.EncodingError{Field: "is_active_member", Err: err}
	}
	complain, err := valueobject.BinaryChoiceFromLabel(a.Complain)
	if err != nil && a.Complain != "" {
		return in, &fault.EncodingError{Field: "complain", Err: err}
	}

	return model.RawCustomerInput{
		CreditScore:       a.CreditScore,
		Age:               a.Age,
		Tenure:            a.Tenure,
		Balance:           decimal.NewFromFloat(a.Balance),
		NumOfProducts:     a.NumOfProducts,
		EstimatedSalary:   decimal.NewFromFloat(a.EstimatedSalary),
		SatisfactionScore: a.SatisfactionScore,
		PointEarned:       a.PointEarned,
		Gender:            gender,
		Country:           country,
		Category:          category,
		HasCreditCard:     hasCard,
		IsActiveMember:    active,
		Complain:          complain,
	}, nil
}

// PredictRequest is the input DTO for the PredictChurn use case.
type PredictRequest struct {
	Attributes CustomerAttributes `json:"attributes"`
}

// PredictionResponse is the output DTO for one scored customer.
type PredictionResponse struct {
	PredictionID uuid.UUID `json:"prediction_id"`
	Label        int       `json:"label"`
	Probability  float64   `json:"probability"`
	RiskTier     string    `json:"risk_tier"`
	RiskLabel    string    `json:"risk_label"`
	Decision     string    `json:"decision"`
	WillChurn    bool      `json:"will_churn"`
	PredictedAt  time.Time `json:"predicted_at"`
}

// FromPrediction maps the domain prediction to the response DTO.
func FromPrediction(p *model.ChurnPrediction) PredictionResponse {
	return PredictionResponse{
		PredictionID: p.ID(),
		Label:        p.Label(),
		Probability:  p.Probability(),
		RiskTier:     p.RiskTier().String(),
		RiskLabel:    p.RiskTier().Label(),
		Decision:     p.Decision(),
		WillChurn:    p.WillChurn(),
		PredictedAt:  p.PredictedAt(),
	}
}

// ModelInfoResponse describes the loaded classifier.
type ModelInfoResponse struct {
	ModelType   string   `json:"model_type"`
	Features    []string `json:"features"`
	NumFeatures int      `json:"n_features"`
}
