package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
)

// exportColumns is the header of a single-prediction export: the full input
// echoed next to the outcome, so the file stands on its own in an archive.
var exportColumns = []string{
	"Date_Prediction",
	"Age",
	"Sexe",
	"Pays",
	"Categorie",
	"Score_Credit",
	"Anciennete",
	"Solde",
	"Salaire_Estime",
	"Nb_Produits",
	"Carte_Credit",
	"Membre_Actif",
	"Plainte",
	"Score_Satisfaction",
	"Points_Gagnes",
	"Prediction_Churn",
	"Probabilite_Churn",
	"Niveau_Risque",
}

// WritePrediction renders one scored customer as a two-line CSV document.
func WritePrediction(w io.Writer, attrs dto.CustomerAttributes, resp dto.PredictionResponse) error {
	cw := csv.NewWriter(w)
	cw.Comma = separator

	if err := cw.Write(exportColumns); err != nil {
		return err
	}

	record := []string{
		resp.PredictedAt.Format("2006-01-02 15:04:05"),
		strconv.Itoa(attrs.Age),
		attrs.Gender,
		attrs.Country,
		attrs.Category,
		strconv.Itoa(attrs.CreditScore),
		strconv.Itoa(attrs.Tenure),
		formatFloat(attrs.Balance),
		formatFloat(attrs.EstimatedSalary),
		strconv.Itoa(attrs.NumOfProducts),
		attrs.HasCreditCard,
		attrs.IsActiveMember,
		attrs.Complain,
		strconv.Itoa(attrs.SatisfactionScore),
		strconv.Itoa(attrs.PointEarned),
		strconv.Itoa(resp.Label),
		formatFloat(resp.Probability),
		resp.RiskLabel,
	}
	if err := cw.Write(record); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
