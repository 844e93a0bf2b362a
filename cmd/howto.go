package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/user/riskdash/pkg/help"
)

var howtoCmd = &cobra.Command{
	Use:   "howto [topic]",
	Short: "Show the how-to-use page for riskdash",
	Long: `Renders a help-center page built from the command tree: usage, flags,
and examples for every command. Pass a topic to narrow the page.`,
	Example: `  riskdash howto
  riskdash howto findings`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		topic := ""
		if len(args) > 0 {
			topic = args[0]
		}
		help.BuildModel(rootCmd).Render(os.Stdout, topic)
	},
}

func init() {
	rootCmd.AddCommand(howtoCmd)
}
