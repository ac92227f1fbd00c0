package root

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/FereolKpavode/CHURN/internal/infrastructure/csvio"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a whole CSV file of customers",
	Long: `Score every row of a semicolon-separated CSV file.

Bad rows are reported with their line number and do not stop the run. The
scored rows are written to the output file, ready to share.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("input", "", "Input CSV file (required)")
	batchCmd.Flags().String("output", "resultats_churn.csv", "Output CSV file for the scored rows")
	_ = batchCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cannot open input file: %w", err)
	}
	defer f.Close()

	rows, badRows, err := csvio.ReadBatch(f)
	if err != nil {
		return fmt.Errorf("invalid batch file: %w", err)
	}

	s := buildStack()
	result, err := s.batch.Execute(ctx, rows)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}
	result.Errors = append(result.Errors, badRows...)
	result.Summary.Errored += len(badRows)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer out.Close()
	if err := csvio.WriteResults(out, result.Results); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}

	fmt.Printf("Lignes traitées : %d\n", result.Summary.Processed)
	fmt.Printf("Lignes en erreur : %d\n", result.Summary.Errored)
	fmt.Printf("Churns prédits  : %d (%.1f%%)\n", result.Summary.ChurnCount, result.Summary.ChurnRate*100)
	fmt.Printf("Résultats écrits : %s\n", outputPath)

	for _, e := range result.Errors {
		for _, msg := range e.Messages {
			fmt.Fprintf(os.Stderr, "Ligne %d : %s\n", e.Line, msg)
		}
	}

	return nil
}
