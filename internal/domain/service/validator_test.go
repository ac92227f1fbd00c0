package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FereolKpavode/CHURN/internal/domain/model"
	"github.com/FereolKpavode/CHURN/internal/domain/service"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
	"github.com/FereolKpavode/CHURN/pkg/testutil"
)

func validInput() model.RawCustomerInput {
	return model.RawCustomerInput{
		CreditScore:       650,
		Age:               35,
		Tenure:            5,
		Balance:           decimal.NewFromInt(75000),
		NumOfProducts:     2,
		EstimatedSalary:   decimal.NewFromInt(65000),
		SatisfactionScore: 4,
		PointEarned:       1500,
		HasCreditCard:     valueobject.ChoiceYes,
		IsActiveMember:    valueobject.ChoiceYes,
		Complain:          valueobject.ChoiceNo,
		Gender:            valueobject.GenderMale,
		Country:           valueobject.CountryFrance,
		Category:          valueobject.CategorySilver,
	}
}

func TestValidate_Valid(t *testing.T) {
	v := service.NewValidator()
	assert.Empty(t, v.Validate(validInput()))
}

func TestValidateFields_Boundaries(t *testing.T) {
	v := service.NewValidator()

	in := validInput()
	in.CreditScore = 300
	in.Age = 100
	in.Tenure = 0
	in.SatisfactionScore = 5
	assert.Empty(t, v.Validate(in), "closed range bounds are acceptable")

	in = validInput()
	in.CreditScore = 299
	errs := v.ValidateFields(in)
	require.Len(t, errs, 1)
	testutil.AssertRangeMessage(t, errs, "credit_score", 300, 900, 299)

	in = validInput()
	in.CreditScore = 901
	errs = v.ValidateFields(in)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "credit_score")
}

func TestValidateFields_AllRanges(t *testing.T) {
	v := service.NewValidator()

	in := validInput()
	in.Age = 17
	in.Tenure = 21
	in.Balance = decimal.NewFromInt(300001)
	in.NumOfProducts = 0
	in.EstimatedSalary = decimal.NewFromInt(-1)
	in.SatisfactionScore = 6
	in.PointEarned = 100001

	errs := v.ValidateFields(in)
	assert.Len(t, errs, 7)
}

func TestValidateFields_RequiredCategoricals(t *testing.T) {
	v := service.NewValidator()

	in := validInput()
	in.Gender = valueobject.Gender{}
	in.Country = valueobject.Country{}
	in.Category = valueobject.Category{}
	in.HasCreditCard = valueobject.BinaryChoice{}
	in.IsActiveMember = valueobject.BinaryChoice{}
	in.Complain = valueobject.BinaryChoice{}

	errs := v.ValidateFields(in)
	require.Len(t, errs, 6)
	for _, field := range []string{"gender", "country", "category", "has_credit_card", "is_active_member", "complain"} {
		testutil.AssertRequiredFieldMessage(t, errs, field)
	}
}

func TestValidateBusinessRules(t *testing.T) {
	v := service.NewValidator()

	tests := []struct {
		name   string
		mutate func(*model.RawCustomerInput)
		want   string
	}{
		{
			name: "young with high salary",
			mutate: func(in *model.RawCustomerInput) {
				in.Age = 22
				in.EstimatedSalary = decimal.NewFromInt(200000)
			},
			want: "Incohérence : âge trop jeune pour un salaire si élevé",
		},
		{
			name: "low credit with high balance",
			mutate: func(in *model.RawCustomerInput) {
				in.CreditScore = 350
				in.Balance = decimal.NewFromInt(250000)
			},
			want: "Incohérence : score de crédit trop bas pour un solde si élevé",
		},
		{
			name: "four products but inactive",
			mutate: func(in *model.RawCustomerInput) {
				in.NumOfProducts = 4
				in.IsActiveMember = valueobject.ChoiceNo
			},
			want: "Incohérence : client avec 4 produits mais non actif",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := v.ValidateBusinessRules(in)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[0])
		})
	}
}

func TestValidateBusinessRules_NotTriggeredAtEdges(t *testing.T) {
	v := service.NewValidator()

	in := validInput()
	in.Age = 25
	in.EstimatedSalary = decimal.NewFromInt(200000)
	assert.Empty(t, v.ValidateBusinessRules(in), "age 25 is old enough")

	in = validInput()
	in.NumOfProducts = 3
	in.IsActiveMember = valueobject.ChoiceNo
	assert.Empty(t, v.ValidateBusinessRules(in))
}

func TestValidate_CombinesFieldAndBusinessErrors(t *testing.T) {
	v := service.NewValidator()

	in := validInput()
	in.CreditScore = 299
	in.NumOfProducts = 4
	in.IsActiveMember = valueobject.ChoiceNo

	errs := v.Validate(in)
	assert.Len(t, errs, 2)
}
