package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stakit/internal/parse"
	"stakit/internal/store"
)

var spefCSVHeader = []string{"Net", "TotalCap(pF)", "RC_Est(ns)"}

func spefProbeCmd() *cobra.Command {
	var (
		spefPath string
		outPath  string
		nets     []string
	)

	cmd := &cobra.Command{
		Use:   "spef-probe",
		Short: "Summarize net parasitics from a SPEF file",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := store.ReadText(spefPath)
			if err != nil {
				return err
			}

			summaries := parse.SPEFNets(text, nets)
			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				rows = append(rows, []string{
					s.Net,
					strconv.FormatFloat(s.TotalCapPF, 'f', -1, 64),
					strconv.FormatFloat(s.RCEstNS, 'f', -1, 64),
				})
			}

			if err := store.WriteCSV(outPath, spefCSVHeader, rows); err != nil {
				return err
			}
			logger.Info("Wrote SPEF summary",
				zap.String("path", outPath),
				zap.Int("nets", len(rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&spefPath, "spef", "", "SPEF parasitics file")
	cmd.Flags().StringSliceVar(&nets, "nets", nil, "net names to probe")
	cmd.Flags().StringVar(&outPath, "out", "", "CSV output path")
	_ = cmd.MarkFlagRequired("spef")
	_ = cmd.MarkFlagRequired("nets")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
