package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stakit/internal/parse"
	"stakit/internal/store"
)

var staCSVHeader = []string{"WNS", "TNS", "Start", "End"}

func staExtractCmd() *cobra.Command {
	var (
		reportPath string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "sta-extract",
		Short: "Pull WNS/TNS and critical paths from an STA report into CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := store.ReadText(reportPath)
			if err != nil {
				return err
			}

			sum := parse.STAReport(text)
			rows := make([][]string, 0, len(sum.Paths))
			for _, p := range sum.Paths {
				rows = append(rows, []string{
					formatOptionalFloat(sum.WNS), formatOptionalFloat(sum.TNS), p.Start, p.End,
				})
			}
			// No paths in the report: still emit the summary metrics.
			if len(rows) == 0 {
				rows = append(rows, []string{
					formatOptionalFloat(sum.WNS), formatOptionalFloat(sum.TNS), "", "",
				})
			}

			if err := store.WriteCSV(outPath, staCSVHeader, rows); err != nil {
				return err
			}
			logger.Info("Wrote STA summary",
				zap.String("path", outPath),
				zap.Int("paths", len(sum.Paths)))
			return nil
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "", "STA report file (Tempus/PT)")
	cmd.Flags().StringVar(&outPath, "out", "", "CSV output path")
	_ = cmd.MarkFlagRequired("report")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// formatOptionalFloat renders a value for CSV, empty when absent.
func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
