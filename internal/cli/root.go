package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	apiURL     string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:   "biologia-quiz",
		Short: "Biology quiz client: take the quiz or inspect results as admin",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "override the backend API base URL")
	cmd.AddCommand(NewTakeCmd(&configPath))
	cmd.AddCommand(NewAdminCmd(&configPath))
	cmd.AddCommand(NewResetCmd(&configPath))
	return cmd
}
