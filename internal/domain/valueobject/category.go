package valueobject

import "fmt"

// Category is an immutable value object for the customer loyalty tier.
// RUBIS is the training-time reference category: it carries no indicator
// column in the encoded feature vector.
type Category struct {
	value string
}

var (
	CategoryRubis    = Category{value: "RUBIS"}
	CategorySilver   = Category{value: "SILVER"}
	CategoryGold     = Category{value: "GOLD"}
	CategoryPlatinum = Category{value: "PLATINUM"}
)

// CategoryFromLabel reconstructs a Category from its raw label.
func CategoryFromLabel(s string) (Category, error) {
	switch s {
	case "RUBIS":
		return CategoryRubis, nil
	case "SILVER":
		return CategorySilver, nil
	case "GOLD":
		return CategoryGold, nil
	case "PLATINUM":
		return CategoryPlatinum, nil
	default:
		return Category{}, fmt.Errorf("invalid category: %q (expected RUBIS, SILVER, GOLD or PLATINUM)", s)
	}
}

// Label returns the raw label.
func (c Category) Label() string {
	return c.value
}

// IsZero returns true if the Category has not been set.
func (c Category) IsZero() bool {
	return c.value == ""
}
