package cmd

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <extraction-id>",
	Short: "Get extraction details by ID",
	Long:  `Get the full result for one extraction, including containers, seals, weight, and the scored candidate trace.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	_, formatter, client, err := initializeClient(cmd)
	if err != nil {
		return err
	}

	id, err := validateAndParseID(args[0])
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	extraction, err := client.GetExtraction(id)
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	return formatter.PrintExtraction(extraction)
}
