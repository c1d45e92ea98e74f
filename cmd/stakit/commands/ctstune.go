package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stakit/internal/services/tuner"
	"stakit/internal/store"
)

func ctsTuneCmd() *cobra.Command {
	var (
		logPath  string
		outPath  string
		skewPath string
		wns      float64
		hasHold  bool
	)

	cmd := &cobra.Command{
		Use:   "cts-tune",
		Short: "Recommend per-domain insertion delay and skew targets",
		Long: `Extracts WNS/TNS and hold-violation hints from a CTS/STA log, optionally
per-domain insertion delay and global skew from a ccopt.skew.rpt, and writes
a JSON tuning report with one bounded recommendation per clock domain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logText, err := store.ReadText(logPath)
			if err != nil {
				return err
			}
			var skewText string
			if skewPath != "" {
				if skewText, err = store.ReadText(skewPath); err != nil {
					return err
				}
			}

			// An override counts only when the flag was actually set;
			// --has-hold=false is an explicit "no hold issues".
			var ov tuner.Overrides
			if cmd.Flags().Changed("wns") {
				ov.WNS = &wns
			}
			if cmd.Flags().Changed("has-hold") {
				ov.HoldIssues = &hasHold
			}

			report := appCtx.Tuner.Propose(logText, skewText, ov)
			if err := store.WriteJSON(outPath, report); err != nil {
				return err
			}
			logger.Info("Wrote tuning report",
				zap.String("path", outPath),
				zap.Int("domains", len(report.Recommendations)))
			return nil
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "CTS/STA log (Tempus/PT)")
	cmd.Flags().StringVar(&outPath, "out", "", "JSON output path")
	cmd.Flags().StringVar(&skewPath, "skew-rpt", "", "optional ccopt.skew.rpt for per-domain insertion/skew parsing")
	cmd.Flags().Float64Var(&wns, "wns", 0, "override WNS (e.g. --wns -0.120)")
	cmd.Flags().BoolVar(&hasHold, "has-hold", false, "force hold_issues in the report")
	_ = cmd.MarkFlagRequired("log")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
