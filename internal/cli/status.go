package cli

import (
	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show gateway version and backend health",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		var version map[string]any
		if err := client.Get("/version", &version); err != nil {
			return err
		}

		status := map[string]any{"server": version}
		var health map[string]any
		if err := client.Get("/health", &health); err != nil {
			status["health"] = map[string]string{"status": "degraded", "error": err.Error()}
		} else {
			status["health"] = health
		}
		return printResult(status)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
