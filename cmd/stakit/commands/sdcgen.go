package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stakit/internal/services/constraints"
	"stakit/internal/store"
)

func sdcGenCmd() *cobra.Command {
	var (
		specPath string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "sdc-gen",
		Short: "Generate an SDC file from a YAML constraint spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(specPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", specPath, err)
			}
			spec, err := constraints.Parse(b)
			if err != nil {
				return err
			}

			sdc := appCtx.Constraints.Render(spec)
			if err := store.WriteText(outPath, sdc); err != nil {
				return err
			}
			logger.Info("Wrote SDC constraints",
				zap.String("path", outPath),
				zap.Int("clocks", len(spec.Clocks)))
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "YAML spec for constraints")
	cmd.Flags().StringVar(&outPath, "out", "", "output SDC file path")
	_ = cmd.MarkFlagRequired("spec")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
