package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stakit/internal/parse"
	"stakit/internal/store"
)

func libCheckCmd() *cobra.Command {
	var (
		libPath string
		outPath string
		cells   []string
	)

	cmd := &cobra.Command{
		Use:   "lib-check",
		Short: "Sanity-check a .lib corner file for cells and limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := store.ReadText(libPath)
			if err != nil {
				return err
			}

			findings := parse.LibCheck(text, cells)
			if err := store.WriteJSON(outPath, findings); err != nil {
				return err
			}
			logger.Info("Wrote lib findings",
				zap.String("path", outPath),
				zap.Int("missing_cells", len(findings.MissingCells)))
			return nil
		},
	}

	cmd.Flags().StringVar(&libPath, "lib", "", ".lib corner file")
	cmd.Flags().StringSliceVar(&cells, "cells", nil, "cell names that must be present")
	cmd.Flags().StringVar(&outPath, "out", "", "JSON output path")
	_ = cmd.MarkFlagRequired("lib")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
