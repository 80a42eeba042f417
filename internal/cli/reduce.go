package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/castcolor/pkg/pipeline"
)

// reduceCommand creates the reduce command for converting between casting
// and graph-coloring instances.
func (c *CLI) reduceCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "reduce <to-coloring|to-casting> [file]",
		Short: "Convert between casting and graph-coloring instances",
		Long: `Convert between casting and graph-coloring instances.

to-coloring reads a casting instance and writes its conflict graph: one vertex
per role, an edge for every pair of roles sharing a scene, and as many colors
as the instance declares actors.

to-casting reads a graph-coloring instance and writes a casting instance that
has a solution exactly when the graph's touched vertices are colorable.

The instance is read from file, or from stdin when no file is given.`,
		ValidArgs: []string{pipeline.DirectionToColoring, pipeline.DirectionToCasting},
		Args:      cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateDirection(args[0]); err != nil {
				return err
			}
			return c.runReduce(cmd, args[0], argOrEmpty(args[1:]), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runReduce converts the instance at input (stdin when empty) and writes the
// result to output (stdout when empty).
func (c *CLI) runReduce(cmd *cobra.Command, direction, input, output string) error {
	text, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	runner := c.newRunner()
	defer runner.Close()

	res, err := runner.Reduce(cmd.Context(), direction, text)
	if err != nil {
		return err
	}
	return writeOutput(cmd, output, []byte(res.Output))
}
