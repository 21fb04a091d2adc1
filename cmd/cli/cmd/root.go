package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	cliapi "bl-extraction/internal/cli"
	"bl-extraction/internal/config"
)

var (
	serverURL string
	format    string
	quiet     bool
	noColor   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bl-extract",
	Short: "CLI client for the bill of lading extraction API",
	Long: `bl-extract submits OCR'd shipping document text to the extraction API
and reports the authoritative bill of lading number together with containers,
seals, weight, and the scored candidate trace behind each decision.`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	fang.Execute(context.Background(), rootCmd)
}

func init() {
	// Global flags. Empty defaults mean "use config file, environment, or
	// built-in default" so the flag only wins when explicitly set.
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "API server address (default http://localhost:8080)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Output format (table, json)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (minimal output)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
}

// initializeClient sets up configuration, formatter, and API client
func initializeClient(cmd *cobra.Command) (*cliapi.Config, *cliapi.OutputFormatter, *cliapi.Client, error) {
	cfg, err := config.LoadCLIConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	// Flags take precedence over config file and environment
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if format != "" {
		cfg.Format = format
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet = quiet
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = noColor
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	formatter := cliapi.NewOutputFormatterWithColor(cfg.Format, cfg.Quiet, cfg.NoColor)
	client := cliapi.NewClientWithTimeout(cfg.ServerURL, cfg.RequestTimeout)
	if key := os.Getenv("BL_EXTRACT_API_KEY"); key != "" {
		client.SetAPIKey(key)
	}

	// Test connectivity
	if err := client.HealthCheck(); err != nil {
		formatter.PrintError(err)
		return nil, nil, nil, err
	}

	return cfg, formatter, client, nil
}
