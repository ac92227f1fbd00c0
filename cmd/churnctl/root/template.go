package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FereolKpavode/CHURN/internal/infrastructure/csvio"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the batch input template",
	Long:  "Write the CSV template with the required columns and example rows.",
	RunE:  runTemplate,
}

func init() {
	templateCmd.Flags().String("output", "modele_prediction_churn.csv", "Output file")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("cannot create template file: %w", err)
	}
	defer f.Close()

	if err := csvio.WriteTemplate(f); err != nil {
		return fmt.Errorf("cannot write template: %w", err)
	}

	fmt.Printf("Modèle écrit : %s\n", outputPath)
	return nil
}
