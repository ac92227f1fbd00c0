package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
)

// resultColumns is the header of a batch results file. Column names are the
// French labels the downstream retention teams work with.
var resultColumns = []string{
	"Ligne",
	"Age",
	"Pays",
	"Categorie",
	"Score_Credit",
	"Prediction_Churn",
	"Probabilite_Churn",
	"Niveau_Risque",
	"Decision",
}

// WriteResults renders the scored rows of one batch as semicolon-separated
// CSV, one line per successfully scored customer.
func WriteResults(w io.Writer, results []dto.BatchRowResult) error {
	cw := csv.NewWriter(w)
	cw.Comma = separator

	if err := cw.Write(resultColumns); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			strconv.Itoa(r.Line),
			strconv.Itoa(r.Age),
			r.Country,
			r.Category,
			strconv.Itoa(r.CreditScore),
			strconv.Itoa(r.Prediction),
			formatFloat(r.Probability),
			r.RiskLabel,
			r.Decision,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
