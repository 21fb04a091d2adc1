package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show result cache statistics",
	Long: `Show statistics for the server's extraction result cache. This is an
admin operation; set BL_EXTRACT_API_KEY to the server's admin key.`,
	RunE: runCache,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}

func runCache(cmd *cobra.Command, args []string) error {
	config, formatter, client, err := initializeClient(cmd)
	if err != nil {
		return err
	}

	stats, err := client.GetCacheStats()
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	if config.Format == "json" {
		return json.NewEncoder(os.Stdout).Encode(stats)
	}

	fmt.Printf("Disabled: %v\n", stats.Disabled)
	fmt.Printf("TTL: %s\n", time.Duration(stats.TTL))
	fmt.Printf("Memory entries: %d (%d expired)\n", stats.MemoryTotal, stats.MemoryExpired)
	fmt.Printf("Database entries: %d (%d expired)\n", stats.DatabaseTotal, stats.DatabaseExpired)

	return nil
}
