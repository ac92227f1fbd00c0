package dto

import (
	"fmt"
	"strconv"

	"github.com/FereolKpavode/CHURN/internal/domain/fault"
)

// BatchRow is one raw input row tagged with its 1-based line number in the
// uploaded file.
type BatchRow struct {
	Line       int                `json:"line"`
	Attributes CustomerAttributes `json:"attributes"`
}

// BatchRowResult is the structured outcome for one successfully scored row,
// echoing the identifying attributes alongside the prediction.
type BatchRowResult struct {
	Line        int     `json:"line"`
	Age         int     `json:"age"`
	Country     string  `json:"country"`
	Category    string  `json:"category"`
	CreditScore int     `json:"credit_score"`
	Prediction  int     `json:"prediction"`
	Probability float64 `json:"probability"`
	RiskTier    string  `json:"risk_tier"`
	RiskLabel   string  `json:"risk_label"`
	Decision    string  `json:"decision"`
}

// BatchRowError records why one row could not be scored.
type BatchRowError struct {
	Line     int      `json:"line"`
	Messages []string `json:"messages"`
}

// BatchSummary aggregates one batch run.
type BatchSummary struct {
	Processed  int     `json:"processed"`
	Errored    int     `json:"errored"`
	ChurnCount int     `json:"churn_count"`
	ChurnRate  float64 `json:"churn_rate"`
}

// BatchResponse is the output DTO of the RunBatch use case. Partial failure
// is the normal case: results and errors coexist, indexed by line.
type BatchResponse struct {
	Results []BatchRowResult `json:"results"`
	Errors  []BatchRowError  `json:"errors"`
	Summary BatchSummary     `json:"summary"`
}

// BatchColumns is the required header of a batch input file, in order.
var BatchColumns = []string{
	"age",
	"gender",
	"country",
	"category",
	"credit_score",
	"tenure",
	"balance",
	"estimated_salary",
	"num_of_products",
	"has_credit_card",
	"is_active_member",
	"complain",
	"satisfaction_score",
	"point_earned",
}

// AttributesFromStrings converts one batch file row, keyed by column name,
// into CustomerAttributes. Unparseable numerics surface as EncodingError
// naming the field; label membership is checked later by ToRawInput.
func AttributesFromStrings(fields map[string]string) (CustomerAttributes, error) {
	var a CustomerAttributes
	var err error

	if a.Age, err = parseIntField(fields, "age"); err != nil {
		return a, err
	}
	if a.CreditScore, err = parseIntField(fields, "credit_score"); err != nil {
		return a, err
	}
	if a.Tenure, err = parseIntField(fields, "tenure"); err != nil {
		return a, err
	}
	if a.NumOfProducts, err = parseIntField(fields, "num_of_products"); err != nil {
		return a, err
	}
	if a.SatisfactionScore, err = parseIntField(fields, "satisfaction_score"); err != nil {
		return a, err
	}
	if a.PointEarned, err = parseIntField(fields, "point_earned"); err != nil {
		return a, err
	}
	if a.Balance, err = parseFloatField(fields, "balance"); err != nil {
		return a, err
	}
	if a.EstimatedSalary, err = parseFloatField(fields, "estimated_salary"); err != nil {
		return a, err
	}

	a.Gender = fields["gender"]
	a.Country = fields["country"]
	a.Category = fields["category"]
	a.HasCreditCard = fields["has_credit_card"]
	a.IsActiveMember = fields["is_active_member"]
	a.Complain = fields["complain"]

	return a, nil
}

func parseIntField(fields map[string]string, name string) (int, error) {
	v, err := strconv.Atoi(fields[name])
	if err != nil {
		return 0, &fault.EncodingError{Field: name, Err: fmt.Errorf("not an integer: %q", fields[name])}
	}
	return v, nil
}

func parseFloatField(fields map[string]string, name string) (float64, error) {
	v, err := strconv.ParseFloat(fields[name], 64)
	if err != nil {
		return 0, &fault.EncodingError{Field: name, Err: fmt.Errorf("not a number: %q", fields[name])}
	}
	return v, nil
}
