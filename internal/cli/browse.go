package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command, an interactive solution viewer.
func (c *CLI) browseCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse the solutions of a casting instance interactively",
		Long: `Browse the solutions of a casting instance interactively.

Every solution is listed, including those that the lead filter would drop;
solutions in which actors 1 and 2 never share a scene are marked. Select a
solution to see each role's actor and scenes.

The instance must come from a file since the terminal owns stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-nodes") {
				opts.maxNodes = c.Config.Solve.MaxNodes
			}
			return c.runBrowse(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", 0, "stop after this many search states (0 for no limit)")

	return cmd
}

func (c *CLI) runBrowse(cmd *cobra.Command, input string, opts solveOpts) error {
	text, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	res, err := c.solve(cmd.Context(), text, opts)
	if err != nil {
		return err
	}

	model := NewSolutionListModel(res.Instance, res.Solutions)
	p := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout()))
	_, err = p.Run()
	return err
}
