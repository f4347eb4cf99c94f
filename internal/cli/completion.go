package cli

import "github.com/spf13/cobra"

// completionCommand creates the shell completion command.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for meetgraph.

To load completions:

Bash:
  $ source <(meetgraph completion bash)

  # To load completions for each session (Linux):
  $ meetgraph completion bash > /etc/bash_completion.d/meetgraph

Zsh:
  # compinit must be enabled in ~/.zshrc
  $ meetgraph completion zsh > "${fpath[1]}/_meetgraph"

Fish:
  $ meetgraph completion fish | source

  # To load completions for each session, execute once:
  $ meetgraph completion fish > ~/.config/fish/completions/meetgraph.fish

PowerShell:
  PS> meetgraph completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(c.out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.out)
			}
			return nil
		},
	}

	return cmd
}
