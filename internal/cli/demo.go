package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/castcolor/pkg/demo"
)

// demoCommand creates the demo command for the built-in instances.
func (c *CLI) demoCommand() *cobra.Command {
	var showText bool

	cmd := &cobra.Command{
		Use:   "demo <name|list>",
		Short: "Solve a built-in demo instance",
		Long: `Solve a built-in demo instance, or list them.

The demos are small casting instances. With the lead filter applied "no" has
no solution, "yes" has exactly one and "smallest" has none.

Use --text to print the instance instead of solving it, e.g. to feed it to
'castcolor reduce to-coloring'.`,
		ValidArgs: append(demo.Names(), "list"),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == "list" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), demoTable())
				return err
			}
			if showText {
				text, err := demo.Text(name)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			return c.runDemo(cmd, name)
		},
	}

	cmd.Flags().BoolVar(&showText, "text", false, "print the instance text instead of solving it")

	return cmd
}

// demoTable lists the demos with their descriptions.
func demoTable() string {
	pairs := make([][2]string, 0, len(demo.Names()))
	for _, name := range demo.Names() {
		pairs = append(pairs, [2]string{name, demo.Describe(name)})
	}
	return keyValueTable(pairs)
}
