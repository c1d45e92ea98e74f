package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stakit/internal/app"
)

var (
	verbose bool

	logger *zap.Logger
	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "stakit",
		Short: "STA/CTS report toolkit for first-pass timing tuning",
		Long: `stakit ingests the semi-structured text reports produced by STA and CTS
tools (Tempus, PrimeTime, ccopt) and emits structured first-pass tuning
artifacts: per-clock-domain insertion delay and skew recommendations, STA
summaries, generated SDC constraints, and related sanity checks.

Recommendations are bounded and explainable; they are a starting point for
the next optimization run, not a verified timing-closure result.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			appCtx = app.New(app.Config{Logger: logger})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		ctsTuneCmd(),
		staExtractCmd(),
		sdcGenCmd(),
		libCheckCmd(),
		netlistDiffCmd(),
		spefProbeCmd(),
		ecoSuggestCmd(),
	)
	return root.Execute()
}
