package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `Generate a shell completion script for bl-extract.

Load it for the current session:

  bash:       source <(bl-extract completion bash)
  zsh:        source <(bl-extract completion zsh)
  fish:       bl-extract completion fish | source
  powershell: bl-extract completion powershell | Out-String | Invoke-Expression

To load it automatically, write the script where your shell picks it up,
e.g. /etc/bash_completion.d/bl-extract for bash,
"${fpath[1]}/_bl-extract" for zsh (run compinit first), or
~/.config/fish/completions/bl-extract.fish for fish.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:                  runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func runCompletion(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "bash":
		return rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		return rootCmd.GenZshCompletion(os.Stdout)
	case "fish":
		return rootCmd.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletion(os.Stdout)
	}
	return nil
}
