package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/riskdash/pkg/client"
	"github.com/user/riskdash/pkg/snapshot"
	"github.com/user/riskdash/pkg/view"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save or compare findings snapshots",
}

var snapshotSaveCmd = &cobra.Command{
	Use:     "save",
	Short:   "Save the current findings as a baseline",
	Example: "  riskdash snapshot save --file baseline.json",
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

		file, _ := cmd.Flags().GetString("file")
		resolver := client.NewResolver(c, nil, log)
		result := resolver.Resolve(cmd.Context(), view.NewFilterState())

		if err := snapshot.Save(file, result.Findings); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		fmt.Printf("Saved %d findings to %s\n", len(result.Findings), file)
		return nil
	},
}

var snapshotDiffCmd = &cobra.Command{
	Use:     "diff",
	Short:   "Compare current findings against a saved baseline",
	Example: "  riskdash snapshot diff --file baseline.json",
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

		file, _ := cmd.Flags().GetString("file")
		baseline, err := snapshot.Load(file)
		if err != nil {
			return fmt.Errorf("load baseline: %w", err)
		}

		resolver := client.NewResolver(c, nil, log)
		result := resolver.Resolve(cmd.Context(), view.NewFilterState())

		diff := snapshot.Compare(result.Findings, baseline)
		fmt.Print(diff.Render(file))
		return nil
	},
}

func init() {
	snapshotSaveCmd.Flags().String("file", snapshot.DefaultPath, "Snapshot file path")
	snapshotDiffCmd.Flags().String("file", snapshot.DefaultPath, "Baseline snapshot file path")
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotDiffCmd)
	rootCmd.AddCommand(snapshotCmd)
}
