package valueobject

import "fmt"

// Gender is an immutable value object representing a customer's gender.
type Gender struct {
	value string
}

var (
	GenderMale   = Gender{value: "Homme"}
	GenderFemale = Gender{value: "Femme"}
)

// GenderFromLabel reconstructs a Gender from its raw French label.
func GenderFromLabel(s string) (Gender, error) {
	switch s {
	case "Homme":
		return GenderMale, nil
	case "Femme":
		return GenderFemale, nil
	default:
		return Gender{}, fmt.Errorf("invalid gender: %q (expected Homme or Femme)", s)
	}
}

// Label returns the raw French label.
func (g Gender) Label() string {
	return g.value
}

// IsZero returns true if the Gender has not been set.
func (g Gender) IsZero() bool {
	return g.value == ""
}
