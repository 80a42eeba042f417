package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	cio "github.com/matzehuels/castcolor/pkg/io"
	"github.com/matzehuels/castcolor/pkg/pipeline"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	leadsApart bool   // keep only solutions where actors 1 and 2 never share a scene
	format     string // text or json
	all        bool   // print every kept solution as a table
	duplicates bool   // report every accepting leaf
	maxNodes   int    // search state limit, 0 for none
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{leadsApart: true, format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Enumerate the solutions of a casting instance",
		Long: `Enumerate the solutions of a casting instance.

The instance is read from file, or from stdin when no file is given. By
default only solutions in which actors 1 and 2 never share a scene are
kept; pass --leads-apart=false to keep them all.

Defaults for --leads-apart, --format and --max-nodes come from the
[solve] section of the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applySolveDefaults(cmd, &opts)
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runSolve(cmd, argOrEmpty(args), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.leadsApart, "leads-apart", opts.leadsApart, "keep only solutions where actors 1 and 2 never share a scene")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "print every solution as a table (text format)")
	cmd.Flags().BoolVar(&opts.duplicates, "duplicates", false, "report every accepting search leaf, including repeats")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", 0, "stop after this many search states (0 for no limit)")

	return cmd
}

// applySolveDefaults fills flags the user did not set from the config file.
func (c *CLI) applySolveDefaults(cmd *cobra.Command, opts *solveOpts) {
	flags := cmd.Flags()
	if !flags.Changed("leads-apart") {
		opts.leadsApart = c.Config.Solve.LeadsApart
	}
	if !flags.Changed("format") {
		opts.format = c.Config.Solve.Format
	}
	if !flags.Changed("max-nodes") {
		opts.maxNodes = c.Config.Solve.MaxNodes
	}
}

// runSolve solves the instance at input and prints the result.
func (c *CLI) runSolve(cmd *cobra.Command, input string, opts solveOpts) error {
	text, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	res, err := c.solve(cmd.Context(), text, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.format == pipeline.FormatJSON {
		return cio.WriteJSON(out, res.Report)
	}

	printSearchStats(res.Search.Nodes, res.Search.Leaves, len(res.Solutions), res.CacheHit)
	if opts.all && len(res.Kept) > 0 {
		_, err := fmt.Fprintln(out, solutionTable(res.Kept))
		return err
	}
	return cio.WriteSummary(out, res.Kept)
}

// solve runs the pipeline behind a spinner.
func (c *CLI) solve(ctx context.Context, text string, opts solveOpts) (*pipeline.SolveResult, error) {
	runner := c.newRunner()
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Searching...")
	spinner.Start()

	res, err := runner.Solve(ctx, pipeline.SolveOptions{
		Instance:   text,
		LeadsApart: opts.leadsApart,
		Duplicates: opts.duplicates,
		MaxNodes:   opts.maxNodes,
		Logger:     c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Search failed")
		return nil, err
	}
	spinner.Stop()
	return res, nil
}
