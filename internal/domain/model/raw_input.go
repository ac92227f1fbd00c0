package model

import (
	"github.com/shopspring/decimal"

	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
)

// RawCustomerInput is the structured but not-yet-validated shape of one
// customer's attributes. It is what form handlers and batch row converters
// produce; the validation engine consumes it and CustomerRecord can only be
// constructed from it after validation succeeds. Categorical fields hold
// already-parsed closed variants, so a zero value means the field is missing.
type RawCustomerInput struct {
	CreditScore       int
	Age               int
	Tenure            int
	Balance           decimal.Decimal
	NumOfProducts     int
	EstimatedSalary   decimal.Decimal
	SatisfactionScore int
	PointEarned       int

	HasCreditCard  valueobject.BinaryChoice
	IsActiveMember valueobject.BinaryChoice
	Complain       valueobject.BinaryChoice

	Gender   valueobject.Gender
	Country  valueobject.Country
	Category valueobject.Category
}

// NumericValue returns the value of the named numeric attribute.
// The bool result is false for unknown names.
func (in RawCustomerInput) NumericValue(field string) (float64, bool) {
	switch field {
	case "credit_score":
		return float64(in.CreditScore), true
	case "age":
		return float64(in.Age), true
	case "tenure":
		return float64(in.Tenure), true
	case "balance":
		return in.Balance.InexactFloat64(), true
	case "num_of_products":
		return float64(in.NumOfProducts), true
	case "estimated_salary":
		return in.EstimatedSalary.InexactFloat64(), true
	case "satisfaction_score":
		return float64(in.SatisfactionScore), true
	case "point_earned":
		return float64(in.PointEarned), true
	default:
		return 0, false
	}
}
