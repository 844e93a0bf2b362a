package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/riskdash/pkg/client"
	"github.com/user/riskdash/pkg/model"
	"github.com/user/riskdash/pkg/render"
	"github.com/user/riskdash/pkg/snapshot"
	"github.com/user/riskdash/pkg/view"
)

var findingsCmd = &cobra.Command{
	Use:   "findings",
	Short: "List sensitive-data findings from the backend",
	Long: `Fetches findings for the configured client id, applying the requested
filters server side. When the filtered endpoints come back empty the raw
findings file (if given) is filtered locally so you still get a correct view.`,
	Example: `  riskdash findings --risk high --sort confidence_score --desc
  riskdash findings --sensitivity medium --all`,
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

		riskFilter, _ := cmd.Flags().GetString("risk")
		sensFilter, _ := cmd.Flags().GetString("sensitivity")
		sortKey, _ := cmd.Flags().GetString("sort")
		desc, _ := cmd.Flags().GetBool("desc")
		showAll, _ := cmd.Flags().GetBool("all")
		rawFile, _ := cmd.Flags().GetString("raw-file")

		var raw []model.Finding
		if rawFile != "" {
			raw, err = snapshot.Load(rawFile)
			if err != nil {
				return fmt.Errorf("load raw findings: %w", err)
			}
		}

		filter := view.FilterState{RiskLevel: riskFilter, Sensitivity: sensFilter}
		resolver := client.NewResolver(c, raw, log)
		result := resolver.Resolve(cmd.Context(), filter)

		var state view.State
		state.Commit(result.Epoch, result.Strategy, result.Findings)

		sortState := view.SortState{Key: sortKey, Direction: view.Asc}
		if desc {
			sortState.Direction = view.Desc
		}
		sorted := sortState.Apply(state.Findings())
		windowed := view.Window(sorted, showAll)

		table := &render.Table{Log: log}
		table.Findings(os.Stdout, windowed, len(sorted))
		return nil
	},
}

func init() {
	findingsCmd.Flags().String("risk", "all", "Filter by risk level (all, low, medium, high)")
	findingsCmd.Flags().String("sensitivity", "all", "Filter by sensitivity (all, low, medium, high)")
	findingsCmd.Flags().String("sort", "", "Sort by column (finding_id, finding_type, sde_category, risk_level, sensitivity, confidence_score, scan_timestamp)")
	findingsCmd.Flags().Bool("desc", false, "Sort descending")
	findingsCmd.Flags().Bool("all", false, "Show every row instead of the first 10")
	findingsCmd.Flags().String("raw-file", "", "JSON file of unfiltered findings used as the local-filter fallback")
	rootCmd.AddCommand(findingsCmd)
}
