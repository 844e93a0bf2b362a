package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/user/riskdash/pkg/agent"
	"github.com/user/riskdash/pkg/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	Run: func(cmd *cobra.Command, args []string) {
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("Welcome to the riskdash Setup Wizard")
		fmt.Println("------------------------------------")

		// 1. Backend
		fmt.Println("Step 1: Backend")
		fmt.Print("Backend base URL (default http://localhost:8000) > ")
		scanner.Scan()
		base := strings.TrimSpace(scanner.Text())
		fmt.Print("Client id > ")
		scanner.Scan()
		clientID := strings.TrimSpace(scanner.Text())

		// 2. Chat provider
		fmt.Println("\nStep 2: Choose your chat provider")
		fmt.Println("1. Backend inference endpoint (no key needed)")
		fmt.Println("2. Gemini (Google)")
		fmt.Println("3. OpenAI")
		fmt.Println("4. Anthropic")
		fmt.Print("Enter number or name > ")
		scanner.Scan()
		choice := strings.ToLower(strings.TrimSpace(scanner.Text()))

		var provider string
		switch choice {
		case "1", "backend", "":
			provider = "backend"
		case "2", "gemini":
			provider = "gemini"
		case "3", "openai":
			provider = "openai"
		case "4", "anthropic":
			provider = "anthropic"
		default:
			fmt.Println("Invalid choice. Aborting.")
			return
		}

		var apiKey, selectedModel string
		if provider != "backend" {
			// 3. Enter API Key
			fmt.Printf("\nStep 3: Enter API Key for %s\n", provider)
			fmt.Print("> ")
			scanner.Scan()
			apiKey = strings.TrimSpace(scanner.Text())
			if apiKey == "" {
				fmt.Println("API Key cannot be empty.")
				return
			}

			// 4. Fetch Models
			fmt.Println("\nStep 4: Validating key and fetching available models...")
			ctx := context.Background()

			tempProvider, err := agent.NewProvider(ctx, provider, apiKey, "", nil)
			if err != nil {
				fmt.Printf("Error initializing provider: %v\n", err)
				return
			}

			models, err := tempProvider.ListModels(ctx)
			if err != nil {
				fmt.Printf("Warning: Could not fetch models from API: %v\n", err)
				fmt.Println("Please enter model name manually (e.g., 'gemini-pro', 'gpt-4'):")
				fmt.Print("> ")
				scanner.Scan()
				selectedModel = strings.TrimSpace(scanner.Text())
			} else {
				fmt.Printf("Successfully retrieved %d models.\n", len(models))
				for i, m := range models {
					fmt.Printf("%d. %s\n", i+1, m)
				}
				fmt.Print("Select Model (number) > ")
				scanner.Scan()
				selStr := strings.TrimSpace(scanner.Text())
				selIdx, err := strconv.Atoi(selStr)
				if err != nil || selIdx < 1 || selIdx > len(models) {
					fmt.Println("Invalid selection. Using first available model.")
					selectedModel = models[0]
				} else {
					selectedModel = models[selIdx-1]
				}
			}
		}

		// Save Configuration
		fmt.Println("\nSaving Configuration...")
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		if base != "" {
			cfg.Backend.BaseURL = strings.TrimRight(base, "/")
		}
		if clientID != "" {
			cfg.Backend.ClientID = clientID
		}
		cfg.SelectedProvider = provider
		cfg.SelectedModel = selectedModel
		if apiKey != "" {
			cfg.SetAPIKey(provider, apiKey)
		}

		if err := config.SaveConfig(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}

		fmt.Println("------------------------------------")
		fmt.Println("Setup Complete!")
		fmt.Printf("Backend:  %s\n", cfg.Backend.BaseURL)
		fmt.Printf("Provider: %s\n", provider)
		if selectedModel != "" {
			fmt.Printf("Model:    %s\n", selectedModel)
		}
		fmt.Println("You can now run 'riskdash findings' or 'riskdash chat'")
	},
}

func init() {
	configCmd.AddCommand(setupCmd)
}
