package valueobject

import "fmt"

// BinaryChoice is an immutable two-valued answer (Oui/Non) used by the
// has-credit-card, is-active-member and complain attributes.
type BinaryChoice struct {
	value string
}

var (
	ChoiceYes = BinaryChoice{value: "Oui"}
	ChoiceNo  = BinaryChoice{value: "Non"}
)

// BinaryChoiceFromLabel reconstructs a BinaryChoice from its raw French label.
func BinaryChoiceFromLabel(s string) (BinaryChoice, error) {
	switch s {
	case "Oui":
		return ChoiceYes, nil
	case "Non":
		return ChoiceNo, nil
	default:
		return BinaryChoice{}, fmt.Errorf("invalid binary choice: %q (expected Oui or Non)", s)
	}
}

// Label returns the raw French label.
func (b BinaryChoice) Label() string {
	return b.value
}

// Bool reports whether the choice is Oui.
func (b BinaryChoice) Bool() bool {
	return b == ChoiceYes
}

// Indicator returns the 0/1 encoding consumed by the model.
func (b BinaryChoice) Indicator() float64 {
	if b == ChoiceYes {
		return 1
	}
	return 0
}

// IsZero returns true if the BinaryChoice has not been set.
func (b BinaryChoice) IsZero() bool {
	return b.value == ""
}
