package cli

import (
	"github.com/spf13/cobra"
)

// completionShells lists the shells the completion command supports.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for deckjson.

Bash:
  $ source <(deckjson completion bash)

Zsh:
  $ deckjson completion zsh > "${fpath[1]}/_deckjson"

Fish:
  $ deckjson completion fish > ~/.config/fish/completions/deckjson.fish

PowerShell:
  PS> deckjson completion powershell | Out-String | Invoke-Expression

Flags completed by the scripts can also be set through DECKJSON_* variables.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
