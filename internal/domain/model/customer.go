package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/FereolKpavode/CHURN/internal/domain/fault"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
)

// CustomerRecord is the canonical, validated representation of one customer.
// It is immutable after construction and owns the encoding contract that
// turns it into the classifier's expected feature vector.
type CustomerRecord struct {
	creditScore       int
	age               int
	tenure            int
	balance           decimal.Decimal
	numOfProducts     int
	estimatedSalary   decimal.Decimal
	satisfactionScore int
	pointEarned       int

	hasCreditCard  valueobject.BinaryChoice
	isActiveMember valueobject.BinaryChoice
	complain       valueobject.BinaryChoice

	gender   valueobject.Gender
	country  valueobject.Country
	category valueobject.Category
}

// NewCustomerRecord constructs a CustomerRecord from validated raw input.
// The constructor re-checks the declared invariants so a record can never
// exist with an out-of-range numeric field or an unset categorical field,
// even if a caller skips the validation engine.
func NewCustomerRecord(in RawCustomerInput) (*CustomerRecord, error) {
	for _, field := range NumericFields {
		r := ValidationRanges[field]
		v, _ := in.NumericValue(field)
		if v < r.Min || v > r.Max {
			return nil, &fault.ValidationError{Messages: []string{
				fmt.Sprintf("%s doit être entre %g et %g, reçu : %g", field, r.Min, r.Max, v),
			}}
		}
	}

	var missing []string
	if in.HasCreditCard.IsZero() {
		missing = append(missing, "has_credit_card")
	}
	if in.IsActiveMember.IsZero() {
		missing = append(missing, "is_active_member")
	}
	if in.Complain.IsZero() {
		missing = append(missing, "complain")
	}
	if in.Gender.IsZero() {
		missing = append(missing, "gender")
	}
	if in.Country.IsZero() {
		missing = append(missing, "country")
	}
	if in.Category.IsZero() {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		msgs := make([]string, 0, len(missing))
		for _, field := range missing {
			msgs = append(msgs, fmt.Sprintf("Le champ %s est requis", field))
		}
		return nil, &fault.ValidationError{Messages: msgs}
	}

	return &CustomerRecord{
		creditScore:       in.CreditScore,
		age:               in.Age,
		tenure:            in.Tenure,
		balance:           in.Balance,
		numOfProducts:     in.NumOfProducts,
		estimatedSalary:   in.EstimatedSalary,
		satisfactionScore: in.SatisfactionScore,
		pointEarned:       in.PointEarned,
		hasCreditCard:     in.HasCreditCard,
		isActiveMember:    in.IsActiveMember,
		complain:          in.Complain,
		gender:            in.Gender,
		country:           in.Country,
		category:          in.Category,
	}, nil
}

// FeatureVector encodes the record into the frozen 17-slot column order of
// FeatureNames. France and RUBIS are the implicit all-zero baselines of their
// one-hot groups, so the country and category indicators are mutually
// exclusive by construction.
func (c *CustomerRecord) FeatureVector() []float64 {
	var isMale float64
	switch c.gender {
	case valueobject.GenderMale:
		isMale = 1
	case valueobject.GenderFemale:
		isMale = 0
	}

	var isGermany, isSpain float64
	switch c.country {
	case valueobject.CountryGermany:
		isGermany = 1
	case valueobject.CountrySpain:
		isSpain = 1
	case valueobject.CountryFrance:
		// reference country, all indicators stay zero
	}

	var isGold, isPlatinum, isSilver float64
	switch c.category {
	case valueobject.CategoryGold:
		isGold = 1
	case valueobject.CategoryPlatinum:
		isPlatinum = 1
	case valueobject.CategorySilver:
		isSilver = 1
	case valueobject.CategoryRubis:
		// reference category, all indicators stay zero
	}

	return []float64{
		float64(c.creditScore),
		float64(c.age),
		float64(c.tenure),
		c.balance.InexactFloat64(),
		float64(c.numOfProducts),
		c.hasCreditCard.Indicator(),
		c.isActiveMember.Indicator(),
		c.estimatedSalary.InexactFloat64(),
		c.complain.Indicator(),
		float64(c.satisfactionScore),
		float64(c.pointEarned),
		isMale,
		isGermany,
		isSpain,
		isGold,
		isPlatinum,
		isSilver,
	}
}

// --- Accessors ---

func (c *CustomerRecord) CreditScore() int                          { return c.creditScore }
func (c *CustomerRecord) Age() int                                  { return c.age }
func (c *CustomerRecord) Tenure() int                               { return c.tenure }
func (c *CustomerRecord) Balance() decimal.Decimal                  { return c.balance }
func (c *CustomerRecord) NumOfProducts() int                        { return c.numOfProducts }
func (c *CustomerRecord) EstimatedSalary() decimal.Decimal          { return c.estimatedSalary }
func (c *CustomerRecord) SatisfactionScore() int                    { return c.satisfactionScore }
func (c *CustomerRecord) PointEarned() int                          { return c.pointEarned }
func (c *CustomerRecord) HasCreditCard() valueobject.BinaryChoice   { return c.hasCreditCard }
func (c *CustomerRecord) IsActiveMember() valueobject.BinaryChoice  { return c.isActiveMember }
func (c *CustomerRecord) Complain() valueobject.BinaryChoice        { return c.complain }
func (c *CustomerRecord) Gender() valueobject.Gender                { return c.gender }
func (c *CustomerRecord) Country() valueobject.Country              { return c.country }
func (c *CustomerRecord) Category() valueobject.Category            { return c.category }
