package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stakit/internal/services/eco"
	"stakit/internal/store"
)

func ecoSuggestCmd() *cobra.Command {
	var (
		pathsCSV string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "eco-suggest",
		Short: "Annotate STA path CSV rows with ECO suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			header, rows, err := store.ReadCSV(pathsCSV)
			if err != nil {
				return err
			}

			outHeader, outRows := eco.Annotate(header, rows)
			if err := store.WriteCSV(outPath, outHeader, outRows); err != nil {
				return err
			}
			logger.Info("Wrote ECO suggestions",
				zap.String("path", outPath),
				zap.Int("rows", len(outRows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&pathsCSV, "paths", "", "CSV from sta-extract")
	cmd.Flags().StringVar(&outPath, "out", "", "CSV output path with suggestions")
	_ = cmd.MarkFlagRequired("paths")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
