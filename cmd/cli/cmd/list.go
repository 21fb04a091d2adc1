package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all extractions",
	Long:    `List every stored extraction, newest first.`,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, formatter, client, err := initializeClient(cmd)
	if err != nil {
		return err
	}

	extractions, err := client.GetExtractions()
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	return formatter.PrintExtractions(extractions)
}
