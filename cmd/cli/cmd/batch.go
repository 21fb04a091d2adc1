package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	cliapi "bl-extraction/internal/cli"
)

var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Extract from every text file in a directory",
	Long: `Submit every .txt file in the given directory for extraction and print
a summary row per document. Files that fail to submit are reported and do not
stop the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

type batchResult struct {
	file       string
	blNumber   string
	confidence string
	err        error
}

func runBatch(cmd *cobra.Command, args []string) error {
	config, formatter, client, err := initializeClient(cmd)
	if err != nil {
		return err
	}

	files, err := collectBatchFiles(args[0])
	if err != nil {
		formatter.PrintError(err)
		return err
	}
	if len(files) == 0 {
		formatter.PrintInfo("No .txt files found")
		return nil
	}

	spinner := cliapi.NewProgressSpinner(fmt.Sprintf("Extracting from %d documents", len(files)), config.NoColor || config.Quiet)
	spinner.Start()

	results := make([]batchResult, 0, len(files))
	for _, file := range files {
		results = append(results, submitBatchFile(client, file))
	}

	spinner.Stop()

	failed := 0
	for _, result := range results {
		if result.err != nil {
			failed++
			if !config.Quiet {
				formatter.PrintError(fmt.Errorf("%s: %w", result.file, result.err))
			}
			continue
		}
		if config.Quiet {
			fmt.Printf("%s\t%s\n", result.file, result.blNumber)
		} else {
			fmt.Printf("%s\t%s\t%s\n", result.file, result.blNumber, result.confidence)
		}
	}

	if !config.Quiet {
		formatter.PrintSuccess(fmt.Sprintf("Processed %d documents (%d failed)", len(results), failed))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}

	return nil
}

// collectBatchFiles returns the .txt files directly inside dir, sorted by name
func collectBatchFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}

func submitBatchFile(client *cliapi.Client, file string) batchResult {
	result := batchResult{file: filepath.Base(file), blNumber: "-"}

	data, err := os.ReadFile(file)
	if err != nil {
		result.err = err
		return result
	}

	extraction, err := client.CreateExtraction(&cliapi.ExtractRequest{
		Text:     string(data),
		Filename: filepath.Base(file),
	})
	if err != nil {
		result.err = err
		return result
	}

	if extraction.BLNumber != nil {
		result.blNumber = *extraction.BLNumber
	}
	result.confidence = extraction.Confidence

	return result
}
