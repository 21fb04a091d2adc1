package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	cliapi "bl-extraction/internal/cli"
)

var extractCmd = &cobra.Command{
	Use:     "extract [file]",
	Aliases: []string{"x"},
	Short:   "Extract a bill of lading number from document text",
	Long: `Submit OCR'd document text for extraction. Text is read from the given
file, from --text, or from stdin when neither is provided. The server returns
the stored extraction, including the candidate trace.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

var (
	extractText string
	extractHint string
)

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractText, "text", "t", "", "Document text to extract from")
	extractCmd.Flags().StringVar(&extractHint, "hint", "", "Document type hint (BL, IM8)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	config, formatter, client, err := initializeClient(cmd)
	if err != nil {
		return err
	}

	text, filename, err := readExtractInput(args)
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	req := &cliapi.ExtractRequest{
		Text:        text,
		Filename:    filename,
		DocTypeHint: extractHint,
	}

	extraction, err := client.CreateExtraction(req)
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	if !config.Quiet {
		if extraction.BLNumber != nil {
			formatter.PrintSuccess(fmt.Sprintf("Extracted %s (%s confidence)", *extraction.BLNumber, extraction.Confidence))
		} else {
			formatter.PrintInfo(fmt.Sprintf("No bill of lading number found (%s)", extraction.Reason))
		}
	}

	return formatter.PrintExtraction(extraction)
}

// readExtractInput resolves the document text and filename from the
// positional file argument, the --text flag, or stdin.
func readExtractInput(args []string) (string, string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), filepath.Base(args[0]), nil
	}

	if extractText != "" {
		return extractText, "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", "", fmt.Errorf("no document text provided (use a file argument, --text, or stdin)")
	}

	return string(data), "", nil
}
