package root

import (
	"github.com/spf13/cobra"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
)

// registerCustomerFlags declares the full attribute set on a command.
// Categorical values use the same French vocabulary as the CSV files.
func registerCustomerFlags(cmd *cobra.Command) {
	cmd.Flags().Int("age", 30, "Customer age (18-100)")
	cmd.Flags().String("gender", "", "Gender (Homme/Femme)")
	cmd.Flags().String("country", "", "Country (France/Allemagne/Espagne)")
	cmd.Flags().String("category", "", "Card category (RUBIS/SILVER/GOLD/PLATINUM)")
	cmd.Flags().Int("credit-score", 600, "Credit score (300-900)")
	cmd.Flags().Int("tenure", 3, "Years with the bank (0-20)")
	cmd.Flags().Float64("balance", 1000, "Account balance (0-300000)")
	cmd.Flags().Float64("estimated-salary", 50000, "Estimated salary (0-300000)")
	cmd.Flags().Int("num-products", 2, "Number of products (1-4)")
	cmd.Flags().String("has-credit-card", "", "Has a credit card (Oui/Non)")
	cmd.Flags().String("is-active-member", "", "Is an active member (Oui/Non)")
	cmd.Flags().String("complain", "", "Complained recently (Oui/Non)")
	cmd.Flags().Int("satisfaction-score", 3, "Satisfaction score (0-5)")
	cmd.Flags().Int("points", 500, "Loyalty points earned (0-100000)")

	for _, required := range []string{"gender", "country", "category", "has-credit-card", "is-active-member", "complain"} {
		_ = cmd.MarkFlagRequired(required)
	}
}

// attributesFromFlags collects the declared flags into the boundary DTO.
func attributesFromFlags(cmd *cobra.Command) dto.CustomerAttributes {
	age, _ := cmd.Flags().GetInt("age")
	gender, _ := cmd.Flags().GetString("gender")
	country, _ := cmd.Flags().GetString("country")
	category, _ := cmd.Flags().GetString("category")
	creditScore, _ := cmd.Flags().GetInt("credit-score")
	tenure, _ := cmd.Flags().GetInt("tenure")
	balance, _ := cmd.Flags().GetFloat64("balance")
	salary, _ := cmd.Flags().GetFloat64("estimated-salary")
	numProducts, _ := cmd.Flags().GetInt("num-products")
	hasCard, _ := cmd.Flags().GetString("has-credit-card")
	active, _ := cmd.Flags().GetString("is-active-member")
	complain, _ := cmd.Flags().GetString("complain")
	satisfaction, _ := cmd.Flags().GetInt("satisfaction-score")
	points, _ := cmd.Flags().GetInt("points")

	return dto.CustomerAttributes{
		CreditScore:       creditScore,
		Age:               age,
		Tenure:            tenure,
		Balance:           balance,
		NumOfProducts:     numProducts,
		EstimatedSalary:   salary,
		SatisfactionScore: satisfaction,
		PointEarned:       points,
		Gender:            gender,
		Country:           country,
		Category:          category,
		HasCreditCard:     hasCard,
		IsActiveMember:    active,
		Complain:          complain,
	}
}
