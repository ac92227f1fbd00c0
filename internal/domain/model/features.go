package model

// FeatureNames is the frozen training-time column order of the classifier.
// The order is significant and must match the model artifact byte-for-byte.
// "satisfaction score" and "point earned" keep their embedded space because
// the original training frame used those exact column labels.
var FeatureNames = []string{
	"creditscore",
	"age",
	"tenure",
	"balance",
	"numofproducts",
	"hascrcard",
	"isactivemember",
	"estimatedsalary",
	"complain",
	"satisfaction score",
	"point earned",
	"Male",
	"Germany",
	"Spain",
	"GOLD",
	"PLATINUM",
	"SILVER",
}

// NumFeatures is the length of the encoded feature vector.
const NumFeatures = 17

// NumericRange declares the closed validation bounds of a numeric attribute.
type NumericRange struct {
	Min     float64
	Max     float64
	Default float64
}

// NumericFields lists the raw numeric attribute names in declaration order,
// so validation reports errors in a stable order.
var NumericFields = []string{
	"credit_score",
	"age",
	"tenure",
	"balance",
	"num_of_products",
	"estimated_salary",
	"satisfaction_score",
	"point_earned",
}

// ValidationRanges declares the closed [min, max] range of every numeric
// attribute of a customer record.
var ValidationRanges = map[string]NumericRange{
	"credit_score":       {Min: 300, Max: 900, Default: 600},
	"age":                {Min: 18, Max: 100, Default: 30},
	"tenure":             {Min: 0, Max: 20, Default: 3},
	"balance":            {Min: 0, Max: 300000, Default: 1000},
	"num_of_products":    {Min: 1, Max: 4, Default: 2},
	"estimated_salary":   {Min: 0, Max: 300000, Default: 50000},
	"satisfaction_score": {Min: 0, Max: 5, Default: 3},
	"point_earned":       {Min: 0, Max: 100000, Default: 500},
}
