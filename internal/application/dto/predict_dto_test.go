package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
	"github.com/FereolKpavode/CHURN/internal/domain/fault"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
)

func validAttributes() dto.CustomerAttributes {
	return dto.CustomerAttributes{
		CreditScore:       650,
		Age:               35,
		Tenure:            5,
		Balance:           75000,
		NumOfProducts:     2,
		EstimatedSalary:   65000,
		SatisfactionScore: 4,
		PointEarned:       1500,
		Gender:            "Homme",
		Country:           "France",
		Category:          "SILVER",
		HasCreditCard:     "Oui",
		IsActiveMember:    "Oui",
		Complain:          "Non",
	}
}

func TestToRawInput_Valid(t *testing.T) {
	in, err := validAttributes().ToRawInput()
	require.NoError(t, err)

	assert.Equal(t, 650, in.CreditScore)
	assert.Equal(t, valueobject.GenderMale, in.Gender)
	assert.Equal(t, valueobject.CountryFrance, in.Country)
	assert.Equal(t, valueobject.CategorySilver, in.Category)
	assert.Equal(t, valueobject.ChoiceYes, in.HasCreditCard)
	assert.Equal(t, valueobject.ChoiceNo, in.Complain)
	assert.Equal(t, 75000.0, in.Balance.InexactFloat64())
}

func TestToRawInput_UnknownLabel(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CustomerAttributes)
		field  string
	}{
		{"gender", func(a *dto.CustomerAttributes) { a.Gender = "Autre" }, "gender"},
		{"country", func(a *dto.CustomerAttributes) { a.Country = "Italie" }, "country"},
		{"category", func(a *dto.CustomerAttributes) { a.Category = "DIAMOND" }, "category"},
		{"has_credit_card", func(a *dto.CustomerAttributes) { a.HasCreditCard = "Peut-être" }, "has_credit_card"},
		{"complain", func(a *dto.CustomerAttributes) { a.Complain = "oui" }, "complain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAttributes()
			tt.mutate(&a)

			_, err := a.ToRawInput()
			require.Error(t, err)

			var encodingErr *fault.EncodingError
			require.ErrorAs(t, err, &encodingErr)
			assert.Equal(t, tt.field, encodingErr.Field)
		})
	}
}

func TestToRawInput_EmptyLabelsPassThrough(t *testing.T) {
	a := validAttributes()
	a.Gender = ""
	a.Country = ""

	// Empty labels are not encoding errors; the validator reports them as
	// missing required fields.
	in, err := a.ToRawInput()
	require.NoError(t, err)
	assert.True(t, in.Gender.IsZero())
	assert.True(t, in.Country.IsZero())
}
