// Package root assembles the churnctl command tree. The CLI drives the same
// use cases as the service, directly against the local model artifact, with
// no broker and no network.
package root

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FereolKpavode/CHURN/internal/application/usecase"
	"github.com/FereolKpavode/CHURN/internal/domain/service"
	"github.com/FereolKpavode/CHURN/internal/domain/valueobject"
	"github.com/FereolKpavode/CHURN/internal/infrastructure/config"
	"github.com/FereolKpavode/CHURN/internal/infrastructure/messaging"
	"github.com/FereolKpavode/CHURN/internal/infrastructure/ml"
	"github.com/FereolKpavode/CHURN/pkg/observability"
)

var rootCmd = &cobra.Command{
	Use:   "churnctl",
	Short: "Score customer churn risk from the command line",
	Long: `churnctl scores bank customers against the trained churn model.

It validates the customer attributes, predicts the churn probability and risk
tier, explains which attributes drive the risk, and processes whole CSV files
in one run.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("model", "models/churn_model.json", "Path to the model artifact")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	viper.SetEnvPrefix("CHURN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(importancesCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(modelInfoCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// stack is the locally wired application: every command builds one and uses
// the use case it needs.
type stack struct {
	predict   *usecase.PredictChurn
	explain   *usecase.ExplainPrediction
	batch     *usecase.RunBatch
	modelInfo *usecase.GetModelInfo
	logger    *slog.Logger
}

// buildStack wires the use cases against the local model artifact. Events go
// nowhere: the CLI is an offline tool.
func buildStack() *stack {
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Service: "churnctl",
		Level:   viper.GetString("log-level"),
		Format:  "text",
	})

	loader := ml.NewLoader(viper.GetString("model"), logger)
	validator := service.NewValidator()
	thresholds := valueobject.TierThresholds{
		MediumAt: cfg.MediumRiskAt,
		HighAt:   cfg.HighRiskAt,
	}
	explainer := service.NewExplainer(loader, service.ExplainerConfig{
		Enabled:        cfg.ExplainerEnabled,
		BackgroundSize: cfg.BackgroundSize,
		Permutations:   cfg.Permutations,
		Seed:           cfg.ExplainerSeed,
		SampleSize:     cfg.ImportanceSampleSize,
	}, logger)

	predict := usecase.NewPredictChurn(loader, messaging.NopPublisher{}, validator, thresholds, logger)

	return &stack{
		predict:   predict,
		explain:   usecase.NewExplainPrediction(loader, explainer, validator, cfg.TopInterpretations, cfg.StrongImpactAt, logger),
		batch:     usecase.NewRunBatch(predict, logger),
		modelInfo: usecase.NewGetModelInfo(loader),
		logger:    logger,
	}
}
