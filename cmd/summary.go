package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/riskdash/pkg/client"
	"github.com/user/riskdash/pkg/config"
	"github.com/user/riskdash/pkg/model"
	"github.com/user/riskdash/pkg/render"
	"github.com/user/riskdash/pkg/summary"
	"github.com/user/riskdash/pkg/view"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the risk metric cards for the current findings",
	Example: `  riskdash summary
  riskdash summary --record`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := buildLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		c, _, err := buildClient(log)
		if err != nil {
			return err
		}

		resolver := client.NewResolver(c, nil, log)
		result := resolver.Resolve(cmd.Context(), view.NewFilterState())
		s := summary.Compute(result.Findings)

		fmt.Printf("Findings: %d\n", s.Total)
		fmt.Println("\nBy risk level:")
		for _, level := range []model.RiskLevel{model.RiskCritical, model.RiskHigh, model.RiskMedium, model.RiskLow, model.RiskUnknown} {
			if n := s.ByRisk[level]; n > 0 {
				fmt.Printf("  %-10s %d\n", render.Badge(string(level)), n)
			}
		}
		fmt.Println("\nBy sensitivity:")
		for _, level := range []model.Sensitivity{model.SensitivityHigh, model.SensitivityMedium, model.SensitivityLow, model.SensitivityUnknown} {
			if n := s.BySensitivity[level]; n > 0 {
				fmt.Printf("  %-10s %d\n", render.Badge(string(level)), n)
			}
		}
		if s.AvgConfidence > 0 {
			fmt.Printf("\nAverage confidence: %.1f%%\n", s.AvgConfidence*100)
		}
		fmt.Printf("Health score: %d/100 (posture: %s)\n", s.Score, s.Posture)

		record, _ := cmd.Flags().GetBool("record")
		if record {
			dir, err := config.HistoryDir()
			if err != nil {
				return err
			}
			tr, err := summary.Record(dir, s)
			if err != nil {
				return err
			}
			if tr.Label == "FIRST_RUN" {
				fmt.Println("\nTrend: first recorded run")
			} else {
				fmt.Printf("\nTrend: %s (%d -> %d)\n", tr.Label, tr.Previous, tr.Current)
			}
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().Bool("record", false, "Record this run in the history index and show the trend")
	rootCmd.AddCommand(summaryCmd)
}
