package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stakit/internal/parse"
	"stakit/internal/store"
)

func netlistDiffCmd() *cobra.Command {
	var (
		aPath   string
		bPath   string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "netlist-diff",
		Short: "Structural module-count diff of two netlists",
		RunE: func(cmd *cobra.Command, args []string) error {
			aText, err := store.ReadText(aPath)
			if err != nil {
				return err
			}
			bText, err := store.ReadText(bPath)
			if err != nil {
				return err
			}

			delta := parse.NetlistDiff(parse.ModuleCounts(aText), parse.ModuleCounts(bText))
			if err := store.WriteJSON(outPath, delta); err != nil {
				return err
			}
			logger.Info("Wrote netlist delta",
				zap.String("path", outPath),
				zap.Int("only_in_a", len(delta.OnlyInA)),
				zap.Int("only_in_b", len(delta.OnlyInB)))
			return nil
		},
	}

	cmd.Flags().StringVar(&aPath, "a", "", "first netlist")
	cmd.Flags().StringVar(&bPath, "b", "", "second netlist")
	cmd.Flags().StringVar(&outPath, "out", "", "JSON output path")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
