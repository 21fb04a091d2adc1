package cmd

import (
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check API server health",
	Long:  `Check that the extraction API server is reachable and its database is healthy.`,
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	// initializeClient already performs the health check
	config, formatter, _, err := initializeClient(cmd)
	if err != nil {
		return err
	}

	if !config.Quiet {
		formatter.PrintSuccess("Server is healthy")
	}

	return nil
}
