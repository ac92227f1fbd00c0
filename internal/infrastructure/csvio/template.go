package csvio

import (
	"encoding/csv"
	"io"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
)

// templateRows are the example customers shipped with the fill-in template,
// one per country and spanning every card category.
var templateRows = [][]string{
	{"35", "Homme", "France", "SILVER", "650", "5", "75000", "65000", "2", "Oui", "Oui", "Non", "4", "1500"},
	{"42", "Femme", "Allemagne", "GOLD", "720", "8", "120000", "85000", "3", "Oui", "Oui", "Non", "5", "2800"},
	{"28", "Homme", "Espagne", "RUBIS", "580", "2", "25000", "45000", "1", "Non", "Non", "Oui", "2", "200"},
	{"56", "Femme", "France", "PLATINUM", "800", "12", "180000", "120000", "4", "Oui", "Oui", "Non", "4", "5000"},
	{"31", "Homme", "Allemagne", "SILVER", "690", "6", "95000", "70000", "2", "Oui", "Non", "Non", "3", "1200"},
}

// WriteTemplate renders the batch input template: the required header plus
// example rows users overwrite with their own data.
func WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = separator

	if err := cw.Write(dto.BatchColumns); err != nil {
		return err
	}
	for _, row := range templateRows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
