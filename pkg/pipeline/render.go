package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/castcolor/pkg/coloring"
	"github.com/matzehuels/castcolor/pkg/reduce"
	"github.com/matzehuels/castcolor/pkg/render/nodelink"
)

// RenderOptions configures [Runner.Render].
type RenderOptions struct {
	Instance string
	Input    string // InputCasting or InputColoring
	Format   string // FormatDOT or FormatSVG

	// Solve fills the vertices with a solution: the first casting solution
	// (actors as colors) for casting input, a proper coloring for graph
	// input. Vertices stay unfilled when there is none.
	Solve      bool
	LeadsApart bool
	MaxNodes   int
}

// Render draws the conflict graph of a casting instance, or a graph-coloring
// instance as is.
func (r *Runner) Render(ctx context.Context, opts RenderOptions) ([]byte, error) {
	if opts.Input == "" {
		opts.Input = InputCasting
	}
	if opts.Format == "" {
		opts.Format = FormatDOT
	}
	if err := ValidateInput(opts.Input); err != nil {
		return nil, err
	}
	if err := ValidateRenderFormat(opts.Format); err != nil {
		return nil, err
	}

	var (
		g     *coloring.Instance
		nlOpt nodelink.Options
	)
	switch opts.Input {
	case InputCasting:
		inst, hash, _, err := parseCasting(ctx, r.Logger, opts.Instance)
		if err != nil {
			return nil, err
		}
		g = reduce.ToColoring(inst)
		nlOpt.Name = "roles"
		nlOpt.Labels = make([]string, g.Vertices)
		for v := range nlOpt.Labels {
			nlOpt.Labels[v] = fmt.Sprintf("R%d", v+1)
		}
		if opts.Solve {
			res, err := r.solve(ctx, inst, hash, SolveOptions{LeadsApart: opts.LeadsApart, MaxNodes: opts.MaxNodes})
			if err != nil {
				return nil, err
			}
			if len(res.Kept) > 0 {
				nlOpt.Colors = res.Kept[0]
			}
		}
	case InputColoring:
		parsed, _, err := parseColoring(ctx, r.Logger, opts.Instance)
		if err != nil {
			return nil, err
		}
		g = parsed
		if opts.Solve {
			if colors, ok := g.Colorable(); ok {
				nlOpt.Colors = colors
			}
		}
	}

	dot := nodelink.ToDOT(g, nlOpt)
	r.Logger.Debug("generated DOT", "vertices", g.Vertices, "edges", len(g.Edges), "colored", nlOpt.Colors != nil)
	if opts.Format == FormatDOT {
		return []byte(dot), nil
	}
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	return svg, nil
}
