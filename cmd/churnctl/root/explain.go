package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain one customer's churn risk",
	Long: `Explain which attributes drive one customer's churn risk.

Lists the per-feature contributions ranked by influence, plus a short
interpretation of the strongest drivers.`,
	RunE: runExplain,
}

var importancesCmd = &cobra.Command{
	Use:   "importances",
	Short: "Compare global feature importances with attribution magnitudes",
	RunE:  runImportances,
}

func init() {
	registerCustomerFlags(explainCmd)
	explainCmd.Flags().Int("top", 0, "Show only the N strongest contributions (0 = all)")
}

func runExplain(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s := buildStack()
	attrs := attributesFromFlags(cmd)

	result, err := s.explain.Execute(ctx, dto.ExplainRequest{Attributes: attrs})
	if err != nil {
		return fmt.Errorf("explanation failed: %w", err)
	}
	if !result.Available {
		fmt.Println("Explication non disponible pour ce modèle.")
		return nil
	}

	fmt.Printf("Probabilité de churn : %.1f%% (base : %.1f%%)\n\n", result.Probability*100, result.Baseline*100)

	top, _ := cmd.Flags().GetInt("top")
	attributions := result.Attributions
	if top > 0 && top < len(attributions) {
		attributions = attributions[:top]
	}
	for _, a := range attributions {
		sign := "+"
		if a.Contribution < 0 {
			sign = "-"
		}
		fmt.Printf("  %-20s %s%.4f (valeur : %g)\n", a.Feature, sign, abs(a.Contribution), a.Value)
	}

	if len(result.Interpretations) > 0 {
		fmt.Println()
		for _, line := range result.Interpretations {
			fmt.Printf("• %s\n", line)
		}
	}

	return nil
}

func runImportances(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s := buildStack()

	result, err := s.explain.Importances(ctx)
	if err != nil {
		return fmt.Errorf("importance comparison failed: %w", err)
	}
	if !result.Available {
		fmt.Println("Comparaison non disponible pour ce modèle.")
		return nil
	}

	fmt.Printf("%-20s %10s %14s\n", "feature", "modèle", "attribution")
	for i, name := range result.Features {
		fmt.Printf("%-20s %10.3f %14.3f\n", name, result.ModelImportance[i], result.AttributionImportance[i])
	}

	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
