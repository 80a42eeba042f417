package pipeline

import (
	"context"

	"github.com/matzehuels/castcolor/pkg/casting"
	"github.com/matzehuels/castcolor/pkg/coloring"
	"github.com/matzehuels/castcolor/pkg/reduce"
)

// VerifyResult compares the casting gadget against direct colorability.
type VerifyResult struct {
	RunID string

	Graph   *coloring.Instance
	Casting *reduce.Casting

	// Gadget reports whether the casting instance built from the graph has
	// a solution.
	Gadget bool

	// Coloring is the first gadget solution mapped back to the graph, nil
	// when Gadget is false.
	Coloring []int

	// ColoringErr is the result of checking Coloring against the graph.
	ColoringErr error

	// Reference reports whether the graph's touched vertices are colorable
	// with plain backtracking.
	Reference bool

	Search casting.Stats
}

// Agree reports whether the gadget and the reference checker reached the
// same verdict and any gadget coloring is valid.
func (v *VerifyResult) Agree() bool {
	return v.Gadget == v.Reference && v.ColoringErr == nil
}

// Verify reduces a graph-coloring instance to casting, solves it, maps the
// first solution back to a coloring and checks it. Isolated vertices take no
// part in the gadget, so both verdicts are reached on the touched subgraph.
func (r *Runner) Verify(ctx context.Context, text string, maxNodes int) (*VerifyResult, error) {
	g, _, err := parseColoring(ctx, r.Logger, text)
	if err != nil {
		return nil, err
	}
	gadget := reduce.ToCasting(g)

	res, err := r.SolveInstance(ctx, gadget.Instance, SolveOptions{MaxNodes: maxNodes})
	if err != nil {
		return nil, err
	}

	out := &VerifyResult{
		RunID:   res.RunID,
		Graph:   g,
		Casting: gadget,
		Gadget:  len(res.Solutions) > 0,
		Search:  res.Search,
	}
	sub, touched := g.Compact()
	_, out.Reference = sub.Colorable()

	if out.Gadget {
		out.Coloring = reduce.ColoringFromCasting(res.Solutions[0], gadget.VertexRoles, g.Vertices)
		picked := make([]int, len(touched))
		for i, v := range touched {
			picked[i] = out.Coloring[v]
		}
		out.ColoringErr = sub.Verify(picked)
	}

	r.Logger.Info("verified reduction",
		"run", out.RunID,
		"gadget", out.Gadget,
		"reference", out.Reference,
		"agree", out.Agree())
	return out, nil
}
