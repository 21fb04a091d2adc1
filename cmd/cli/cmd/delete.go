package cmd

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <extraction-id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an extraction",
	Long: `Delete an extraction and its document. This is an admin operation;
set BL_EXTRACT_API_KEY to the server's admin key.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	config, formatter, client, err := initializeClient(cmd)
	if err != nil {
		return err
	}

	id, err := validateAndParseID(args[0])
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	if err := client.DeleteExtraction(id); err != nil {
		formatter.PrintError(err)
		return err
	}

	if !config.Quiet {
		formatter.PrintSuccess("Extraction deleted successfully")
	}

	return nil
}
