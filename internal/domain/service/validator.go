package service

import (
	"fmt"

	"github.com/FereolKpavode/CHURN/internal/domain/model"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
)

// Validator is the domain service enforcing per-field ranges, categorical
// membership and cross-field business-consistency rules on raw customer
// input. It is stateless and side-effect free.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs the field checks followed by the business-rule checks and
// returns every human-readable error found. The returned slice is empty iff
// the input is fully acceptable. Validate never panics; an internal failure
// is captured and surfaced as one more error string.
func (v *Validator) Validate(in model.RawCustomerInput) (errs []string) {
	defer func() {
		if r := recover(); r != nil {
			errs = append(errs, fmt.Sprintf("Erreur de validation inattendue : %v", r))
		}
	}()

	errs = append(errs, v.ValidateFields(in)...)
	errs = append(errs, v.ValidateBusinessRules(in)...)
	return errs
}

// ValidateFields checks every numeric attribute against its declared
// [min, max] range and every categorical attribute for presence. Error
// messages name the field, the bounds and the received value.
func (v *Validator) ValidateFields(in model.RawCustomerInput) []string {
	var errs []string

	for _, field := range model.NumericFields {
		r := model.ValidationRanges[field]
		value, _ := in.NumericValue(field)
		if value < r.Min || value > r.Max {
			errs = append(errs, fmt.Sprintf("%s doit être entre %g et %g, reçu : %g", field, r.Min, r.Max, value))
		}
	}

	required := []struct {
		name    string
		missing bool
	}{
		{"gender", in.Gender.IsZero()},
		{"country", in.Country.IsZero()},
		{"category", in.Category.IsZero()},
		{"has_credit_card", in.HasCreditCard.IsZero()},
		{"is_active_member", in.IsActiveMember.IsZero()},
		{"complain", in.Complain.IsZero()},
	}
	for _, f := range required {
		if f.missing {
			errs = append(errs, fmt.Sprintf("Le champ %s est requis", f.name))
		}
	}

	return errs
}

// ValidateBusinessRules checks cross-field consistency. The rules flag
// combinations that are individually in range but jointly implausible.
func (v *Validator) ValidateBusinessRules(in model.RawCustomerInput) []string {
	var errs []string

	if in.Age < 25 && in.EstimatedSalary.InexactFloat64() > 150000 {
		errs = append(errs, "Incohérence : âge trop jeune pour un salaire si élevé")
	}

	if in.CreditScore < 400 && in.Balance.InexactFloat64() > 200000 {
		errs = append(errs, "Incohérence : score de crédit trop bas pour un solde si élevé")
	}

	if in.NumOfProducts >= 4 && in.IsActiveMember == valueobject.ChoiceNo {
		errs = append(errs, "Incohérence : client avec 4 produits mais non actif")
	}

	return errs
}
