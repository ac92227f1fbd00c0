package root

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/FereolKpavode/CHURN/internal/application/dto"
	"github.com/FereolKpavode/CHURN/internal/infrastructure/csvio"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score one customer",
	Long: `Score one customer against the churn model.

Prints the predicted decision, the churn probability and the risk tier.
With --export, additionally writes the prediction as a CSV file.`,
	RunE: runPredict,
}

func init() {
	registerCustomerFlags(predictCmd)
	predictCmd.Flags().String("export", "", "Write the prediction to this CSV file")
}

func runPredict(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s := buildStack()
	attrs := attributesFromFlags(cmd)

	result, err := s.predict.Execute(ctx, dto.PredictRequest{Attributes: attrs})
	if err != nil {
		return fmt.Errorf("prediction failed: %w", err)
	}

	fmt.Printf("Décision        : %s\n", result.Decision)
	fmt.Printf("Probabilité     : %.1f%%\n", result.Probability*100)
	fmt.Printf("Niveau de risque : %s (%s)\n", result.RiskLabel, result.RiskTier)

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			return fmt.Errorf("cannot create export file: %w", err)
		}
		defer f.Close()
		if err := csvio.WritePrediction(f, attrs, result); err != nil {
			return fmt.Errorf("cannot write export file: %w", err)
		}
		fmt.Printf("\nExport écrit : %s\n", exportPath)
	}

	return nil
}
