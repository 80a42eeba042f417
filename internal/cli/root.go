package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/castcolor/pkg/demo"
	cio "github.com/matzehuels/castcolor/pkg/io"
	"github.com/matzehuels/castcolor/pkg/pipeline"
)

// runMode dispatches the root command's mode token. Demo names are solved,
// reduction directions convert stdin, and any other token falls back to the
// configured default reduction.
func (c *CLI) runMode(cmd *cobra.Command, mode string) error {
	switch {
	case demo.IsDemo(mode):
		return c.runDemo(cmd, mode)
	case mode == pipeline.DirectionToColoring, mode == pipeline.DirectionToCasting:
		return c.runReduce(cmd, mode, "", "")
	default:
		if mode != "" {
			loggerFromContext(cmd.Context()).Debug("unrecognized mode, using default reduction", "mode", mode, "direction", c.Config.DefaultReduction)
		}
		return c.runReduce(cmd, c.Config.DefaultReduction, "", "")
	}
}

// runDemo solves the named demo with the configured solve defaults and
// prints the summary.
func (c *CLI) runDemo(cmd *cobra.Command, name string) error {
	text, err := demo.Text(name)
	if err != nil {
		return err
	}

	runner := c.newRunner()
	defer runner.Close()

	prog := newProgress(loggerFromContext(cmd.Context()))
	res, err := runner.Solve(cmd.Context(), pipeline.SolveOptions{
		Instance:   text,
		LeadsApart: c.Config.Solve.LeadsApart,
		MaxNodes:   c.Config.Solve.MaxNodes,
	})
	if err != nil {
		return err
	}
	prog.done("Solved demo " + name)

	return cio.WriteSummary(cmd.OutOrStdout(), res.Kept)
}
