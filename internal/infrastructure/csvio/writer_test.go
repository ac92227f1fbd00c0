package csvio_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
	"github.com/FereolKpavode/CHURN/internal/infrastructure/csvio"
)

func TestWriteResults(t *testing.T) {
	results := []dto.BatchRowResult{
		{
			Line:        1,
			Age:         35,
			Country:     "France",
			Category:    "SILVER",
			CreditScore: 650,
			Prediction:  1,
			Probability: 0.8234,
			RiskTier:    "HIGH",
			RiskLabel:   "Élevé",
			Decision:    "PARTIR",
		},
		{
			Line:        3,
			Age:         42,
			Country:     "Allemagne",
			Category:    "GOLD",
			CreditScore: 720,
			Prediction:  0,
			Probability: 0.1,
			RiskTier:    "LOW",
			RiskLabel:   "Faible",
			Decision:    "RESTER",
		},
	}

	var sb strings.Builder
	require.NoError(t, csvio.WriteResults(&sb, results))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Ligne;Age;Pays;Categorie;Score_Credit;Prediction_Churn;Probabilite_Churn;Niveau_Risque;Decision", lines[0])
	assert.Equal(t, "1;35;France;SILVER;650;1;0.8234;Élevé;PARTIR", lines[1])
	assert.Equal(t, "3;42;Allemagne;GOLD;720;0;0.1000;Faible;RESTER", lines[2])
}

func TestWriteResults_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, csvio.WriteResults(&sb, nil))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Len(t, lines, 1, "header only")
}

func TestWritePrediction(t *testing.T) {
	attrs := dto.CustomerAttributes{
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
	resp := dto.PredictionResponse{
		PredictionID: uuid.New(),
		Label:        1,
		Probability:  0.82,
		RiskTier:     "HIGH",
		RiskLabel:    "Élevé",
		Decision:     "PARTIR",
		WillChurn:    true,
		PredictedAt:  time.Date(2026, 8, 24, 14, 30, 0, 0, time.UTC),
	}

	var sb strings.Builder
	require.NoError(t, csvio.WritePrediction(&sb, attrs, resp))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date_Prediction;Age;Sexe;Pays;Categorie;Score_Credit;Anciennete;Solde;Salaire_Estime;Nb_Produits;Carte_Credit;Membre_Actif;Plainte;Score_Satisfaction;Points_Gagnes;Prediction_Churn;Probabilite_Churn;Niveau_Risque", lines[0])
	assert.Equal(t, "2026-08-24 14:30:00;35;Homme;France;SILVER;650;5;75000.0000;65000.0000;2;Oui;Oui;Non;4;1500;1;0.8200;Élevé", lines[1])
}

func TestWriteTemplate(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, csvio.WriteTemplate(&sb))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 6, "header plus five example rows")
	assert.Equal(t, strings.Join(dto.BatchColumns, ";"), lines[0])
	assert.Equal(t, "35;Homme;France;SILVER;650;5;75000;65000;2;Oui;Oui;Non;4;1500", lines[1])
	assert.Contains(t, sb.String(), "Espagne;RUBIS")
}
