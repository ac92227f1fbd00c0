package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FereolKpavode/CHURN/internal/domain/fault"
	"github.com/FereolKpavode/CHURN/internal/domain/model"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
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

func TestNewCustomerRecord_Valid(t *testing.T) {
	record, err := model.NewCustomerRecord(validInput())
	require.NoError(t, err)
	assert.Equal(t, 650, record.CreditScore())
	assert.Equal(t, 35, record.Age())
	assert.Equal(t, valueobject.CountryFrance, record.Country())
}

func TestNewCustomerRecord_OutOfRange(t *testing.T) {
	in := validInput()
	in.CreditScore = 250

	_, err := model.NewCustomerRecord(in)
	require.Error(t, err)

	var validationErr *fault.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages[0], "credit_score")
	assert.Contains(t, validationErr.Messages[0], "doit être entre")
}

func TestNewCustomerRecord_MissingCategorical(t *testing.T) {
	in := validInput()
	in.Gender = valueobject.Gender{}
	in.Complain = valueobject.BinaryChoice{}

	_, err := model.NewCustomerRecord(in)
	require.Error(t, err)

	var validationErr *fault.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Messages, 2)
	assert.Contains(t, validationErr.Messages, "Le champ gender est requis")
	assert.Contains(t, validationErr.Messages, "Le champ complain est requis")
}

func TestFeatureVector_Length(t *testing.T) {
	record, err := model.NewCustomerRecord(validInput())
	require.NoError(t, err)

	vec := record.FeatureVector()
	require.Len(t, vec, model.NumFeatures)
	require.Len(t, model.FeatureNames, model.NumFeatures)
}

func TestFeatureVector_NumericSlots(t *testing.T) {
	record, err := model.NewCustomerRecord(validInput())
	require.NoError(t, err)

	vec := record.FeatureVector()
	assert.Equal(t, 650.0, vec[0])   // creditscore
	assert.Equal(t, 35.0, vec[1])    // age
	assert.Equal(t, 5.0, vec[2])     // tenure
	assert.Equal(t, 75000.0, vec[3]) // balance
	assert.Equal(t, 2.0, vec[4])     // numofproducts
	assert.Equal(t, 1.0, vec[5])     // hascrcard
	assert.Equal(t, 1.0, vec[6])     // isactivemember
	assert.Equal(t, 65000.0, vec[7]) // estimatedsalary
	assert.Equal(t, 0.0, vec[8])     // complain
	assert.Equal(t, 4.0, vec[9])     // satisfaction score
	assert.Equal(t, 1500.0, vec[10]) // point earned
	assert.Equal(t, 1.0, vec[11])    // Male
}

func TestFeatureVector_OneHotExclusivity(t *testing.T) {
	countries := []valueobject.Country{
		valueobject.CountryFrance,
		valueobject.CountryGermany,
		valueobject.CountrySpain,
	}
	categories := []valueobject.Category{
		valueobject.CategoryRubis,
		valueobject.CategorySilver,
		valueobject.CategoryGold,
		valueobject.CategoryPlatinum,
	}

	for _, country := range countries {
		for _, category := range categories {
			in := validInput()
			in.Country = country
			in.Category = category

			record, err := model.NewCustomerRecord(in)
			require.NoError(t, err)
			vec := record.FeatureVector()

			countrySum := vec[12] + vec[13]
			categorySum := vec[14] + vec[15] + vec[16]
			assert.LessOrEqual(t, countrySum, 1.0, "%s/%s", country.Label(), category.Label())
			assert.LessOrEqual(t, categorySum, 1.0, "%s/%s", country.Label(), category.Label())

			// Reference levels encode as all zeros in their group.
			if country == valueobject.CountryFrance {
				assert.Equal(t, 0.0, countrySum)
			}
			if category == valueobject.CategoryRubis {
				assert.Equal(t, 0.0, categorySum)
			}
		}
	}
}

func TestFeatureVector_GermanyAndPlatinum(t *testing.T) {
	in := validInput()
	in.Country = valueobject.CountryGermany
	in.Category = valueobject.CategoryPlatinum

	record, err := model.NewCustomerRecord(in)
	require.NoError(t, err)
	vec := record.FeatureVector()

	assert.Equal(t, 1.0, vec[12]) // Germany
	assert.Equal(t, 0.0, vec[13]) // Spain
	assert.Equal(t, 0.0, vec[14]) // GOLD
	assert.Equal(t, 1.0, vec[15]) // PLATINUM
	assert.Equal(t, 0.0, vec[16]) // SILVER
}
