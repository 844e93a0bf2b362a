package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/riskdash/pkg/agent"
	"github.com/user/riskdash/pkg/client"
	"github.com/user/riskdash/pkg/render"
	"github.com/user/riskdash/pkg/tools"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session about your findings",
	Long: `Starts a chat session. By default questions are proxied to the backend's
inference endpoint; with a configured direct provider (gemini) the session runs
against the model with the dashboard tools registered.`,
	Example: `  riskdash chat
  riskdash chat   # then ask: "how many high risk findings do I have?"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := buildLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		c, cfg, err := buildClient(log)
		if err != nil {
			return err
		}

		providerName := cfg.SelectedProvider
		if providerName == "" {
			providerName = "backend"
		}

		apiKey := cfg.GetAPIKey(providerName)
		if apiKey == "" && providerName == "gemini" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		if apiKey == "" && providerName != "backend" {
			fmt.Println("Error: API Key not found.")
			fmt.Println("Please run 'riskdash config setup' to configure your keys.")
			return nil
		}

		ctx := cmd.Context()
		fmt.Printf("Connecting to %s...\n", providerName)

		provider, err := agent.NewProvider(ctx, providerName, apiKey, cfg.SelectedModel, c)
		if err != nil {
			return fmt.Errorf("create chat provider: %w", err)
		}
		if closer, ok := provider.(interface{ Close() }); ok {
			defer closer.Close()
		}

		a := agent.NewAgent(provider, log)
		resolver := client.NewResolver(c, nil, log)
		table := &render.Table{Log: log}
		a.RegisterTool(&tools.ShowFindingsTool{Resolver: resolver, Table: table})
		a.RegisterTool(&tools.RiskSummaryTool{Resolver: resolver})
		a.RegisterTool(&tools.SaveSnapshotTool{Resolver: resolver})
		a.RegisterTool(&tools.CompareSnapshotTool{Resolver: resolver})
		a.SetSystemPrompt(agent.GetSystemPrompt())

		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("\n---------------------------------------------------------")
		fmt.Println("riskdash assistant ready.")
		fmt.Println("Example: 'show my high risk findings'")
		fmt.Println("Example: 'what changed since the last snapshot?'")
		fmt.Println("Type 'quit' or 'exit' to stop.")
		fmt.Println("---------------------------------------------------------")

		for {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				break
			}
			input := scanner.Text()
			if input == "quit" || input == "exit" {
				break
			}
			if input == "" {
				continue
			}

			fmt.Print("Thinking... ")
			resp, err := a.Chat(ctx, input, func(msg string) {
				fmt.Printf("\r\033[K[Progress]: %s\nThinking... ", msg)
			})
			fmt.Print("\r\033[K")

			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Printf("\n[Assistant]: %s\n", resp)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
