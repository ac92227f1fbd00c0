package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var modelInfoCmd = &cobra.Command{
	Use:   "model-info",
	Short: "Describe the loaded model",
	RunE:  runModelInfo,
}

func runModelInfo(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s := buildStack()

	info, err := s.modelInfo.Execute(ctx)
	if err != nil {
		return fmt.Errorf("cannot load model: %w", err)
	}

	fmt.Printf("Type de modèle : %s\n", info.ModelType)
	fmt.Printf("Features (%d) :\n", info.NumFeatures)
	for _, name := range info.Features {
		fmt.Printf("  - %s\n", name)
	}

	return nil
}
