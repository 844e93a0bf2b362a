package cmd

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/user/riskdash/pkg/client"
	"github.com/user/riskdash/pkg/config"
	"github.com/user/riskdash/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "riskdash",
	Short: "Terminal dashboard for the data-risk scanning backend",
	Long: `riskdash is a terminal client for a data-risk/compliance-scanning
backend. It lists and filters sensitive-data findings, shows risk metrics,
and embeds a chat assistant wired to the backend's inference endpoint.`,
}

var (
	DebugMode bool
	LogLevel  string
	baseURL   string
	clientID  string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&clientID, "client-id", "", "Client id for the findings endpoints (overrides config)")
}

// buildLogger constructs the diagnostic logger for a command run.
func buildLogger() (*zap.Logger, error) {
	level := LogLevel
	if DebugMode {
		level = "debug"
	}
	return logging.New(level)
}

// buildClient loads the config and constructs the backend client, with flag
// overrides applied.
func buildClient(log *zap.Logger) (*client.Client, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	base := cfg.Backend.BaseURL
	if baseURL != "" {
		base = baseURL
	}
	id := cfg.Backend.ClientID
	if clientID != "" {
		id = clientID
	}
	return client.New(base, id, log), cfg, nil
}
