package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/castcolor/pkg/pipeline"
)

// renderCommand creates the render command for drawing instances as
// node-link diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var output string
	opts := pipeline.RenderOptions{
		Input:      pipeline.InputCasting,
		Format:     pipeline.FormatDOT,
		LeadsApart: true,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an instance as a DOT or SVG graph",
		Long: `Render an instance as a DOT or SVG graph.

A casting instance is drawn as its conflict graph: one vertex per role and an
edge between roles sharing a scene. A graph-coloring instance is drawn as is.
With --solve the vertices are filled by the first solution (actors as colors)
or, for graph input, a proper coloring if one exists.

The format defaults to the extension of --output when it is .dot or .svg.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.Format = formatFromPath(output, opts.Format)
			}
			if !cmd.Flags().Changed("leads-apart") {
				opts.LeadsApart = c.Config.Solve.LeadsApart
			}
			if err := pipeline.ValidateInput(opts.Input); err != nil {
				return err
			}
			if err := pipeline.ValidateRenderFormat(opts.Format); err != nil {
				return err
			}
			text, err := readInput(cmd, argOrEmpty(args))
			if err != nil {
				return err
			}
			opts.Instance = text
			return c.runRender(cmd, opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, "output format: dot (default), svg")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", opts.Input, "input kind: casting (default), coloring")
	cmd.Flags().BoolVar(&opts.Solve, "solve", false, "color the vertices with a solution")
	cmd.Flags().BoolVar(&opts.LeadsApart, "leads-apart", opts.LeadsApart, "apply the lead filter before picking a solution (casting input)")
	cmd.Flags().IntVar(&opts.MaxNodes, "max-nodes", 0, "stop after this many search states (0 for no limit)")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts pipeline.RenderOptions, output string) error {
	runner := c.newRunner()
	defer runner.Close()

	prog := newProgress(loggerFromContext(cmd.Context()))
	data, err := runner.Render(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	prog.done("Rendered " + opts.Input + " instance as " + opts.Format)

	return writeOutput(cmd, output, data)
}

// formatFromPath infers the render format from the output extension,
// returning fallback when the extension is not a render format.
func formatFromPath(path, fallback string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(ext) {
	case pipeline.FormatDOT, "gv":
		return pipeline.FormatDOT
	case pipeline.FormatSVG:
		return pipeline.FormatSVG
	}
	return fallback
}
