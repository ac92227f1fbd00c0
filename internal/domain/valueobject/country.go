package valueobject

import "fmt"

// Country is an immutable value object for the customer's country of residence.
// France is the training-time reference country: it carries no indicator column
// in the encoded feature vector.
type Country struct {
	value string
}

var (
	CountryFrance  = Country{value: "France"}
	CountryGermany = Country{value: "Allemagne"}
	CountrySpain   = Country{value: "Espagne"}
)

// CountryFromLabel reconstructs a Country from its raw French label.
func CountryFromLabel(s string) (Country, error) {
	switch s {
	case "France":
		return CountryFrance, nil
	case "Allemagne":
		return CountryGermany, nil
	case "Espagne":
		return CountrySpain, nil
	default:
		return Country{}, fmt.Errorf("invalid country: %q (expected France, Allemagne or Espagne)", s)
	}
}

// Label returns the raw French label.
func (c Country) Label() string {
	return c.value
}

// IsZero returns true if the Country has not been set.
func (c Country) IsZero() bool {
	return c.value == ""
}
