package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for castcolor. Demo names and reduction
directions complete as well as subcommands and flags.

To load completions:

Bash:
  $ source <(castcolor completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ castcolor completion bash > /etc/bash_completion.d/castcolor
  # macOS:
  $ castcolor completion bash > $(brew --prefix)/etc/bash_completion.d/castcolor

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ castcolor completion zsh > "${fpath[1]}/_castcolor"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ castcolor completion fish | source

  # To load completions for each session, execute once:
  $ castcolor completion fish > ~/.config/fish/completions/castcolor.fish

PowerShell:
  PS> castcolor completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> castcolor completion powershell > castcolor.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
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

	return cmd
}
