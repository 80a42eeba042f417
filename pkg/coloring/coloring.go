// Package coloring models graph-coloring instances.
//
// An [Instance] has a vertex count, an undirected edge list and a number of
// available colors. Vertices and colors are 0-indexed. Duplicate edges are
// allowed and kept; they impose the same constraint twice.
//
// [Instance.Verify] checks a candidate coloring and [Instance.Colorable]
// decides colorability with a plain per-vertex backtracking search. The
// latter is the reference the reductions in package reduce are tested
// against.
package coloring

import (
	"errors"
	"fmt"

	cerrors "github.com/matzehuels/castcolor/pkg/errors"
)

// ErrUnknownVertex is returned by [New] when an edge endpoint is outside
// 0..Vertices-1.
var ErrUnknownVertex = errors.New("edge references unknown vertex")

// Edge is an undirected edge between two vertices.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Instance is a graph-coloring instance.
type Instance struct {
	Vertices int    `json:"vertices"`
	Edges    []Edge `json:"edges"`
	Colors   int    `json:"colors"`
}

// New validates the edge endpoints and returns an instance owning a copy of
// edges.
func New(vertices int, edges []Edge, colors int) (*Instance, error) {
	for i, e := range edges {
		if e.From < 0 || e.From >= vertices || e.To < 0 || e.To >= vertices {
			return nil, fmt.Errorf("edge %d (%d-%d): %w", i+1, e.From+1, e.To+1, ErrUnknownVertex)
		}
	}
	return &Instance{
		Vertices: vertices,
		Edges:    append([]Edge(nil), edges...),
		Colors:   colors,
	}, nil
}

// Touched returns the vertices that are an endpoint of at least one edge, in
// ascending order.
func (g *Instance) Touched() []int {
	seen := make([]bool, g.Vertices)
	for _, e := range g.Edges {
		seen[e.From] = true
		seen[e.To] = true
	}
	var out []int
	for v, ok := range seen {
		if ok {
			out = append(out, v)
		}
	}
	return out
}

// Compact returns the subgraph induced by [Instance.Touched], vertices
// renumbered in ascending order, together with the original index of each
// new vertex.
func (g *Instance) Compact() (*Instance, []int) {
	touched := g.Touched()
	index := make(map[int]int, len(touched))
	for i, v := range touched {
		index[v] = i
	}
	edges := make([]Edge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = Edge{From: index[e.From], To: index[e.To]}
	}
	return &Instance{Vertices: len(touched), Edges: edges, Colors: g.Colors}, touched
}

// Neighbors returns the adjacency lists of the graph. Duplicate edges yield
// duplicate entries.
func (g *Instance) Neighbors() [][]int {
	adj := make([][]int, g.Vertices)
	for _, e := range g.Edges {
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}
	return adj
}

// Verify checks that colors assigns every vertex a color in 0..Colors-1 and
// that no edge joins two vertices of the same color.
func (g *Instance) Verify(colors []int) error {
	if len(colors) != g.Vertices {
		return cerrors.New(cerrors.ErrCodeInvalidSolution,
			"coloring covers %d vertices, graph has %d", len(colors), g.Vertices)
	}
	for v, c := range colors {
		if c < 0 || c >= g.Colors {
			return cerrors.New(cerrors.ErrCodeInvalidSolution,
				"vertex %d has color %d outside 1..%d", v+1, c+1, g.Colors)
		}
	}
	for i, e := range g.Edges {
		if colors[e.From] == colors[e.To] {
			return cerrors.New(cerrors.ErrCodeInvalidSolution,
				"edge %d joins vertices %d and %d of color %d", i+1, e.From+1, e.To+1, colors[e.From]+1)
		}
	}
	return nil
}

// Colorable reports whether the graph admits a proper coloring with
// g.Colors colors, and returns one when it does. A graph without vertices is
// trivially colorable. A self-loop makes a graph uncolorable.
func (g *Instance) Colorable() ([]int, bool) {
	adj := g.Neighbors()
	colors := make([]int, g.Vertices)
	for v := range colors {
		colors[v] = -1
	}

	var assign func(v int) bool
	assign = func(v int) bool {
		if v == g.Vertices {
			return true
		}
		for c := 0; c < g.Colors; c++ {
			if clashes(adj[v], colors, v, c) {
				continue
			}
			colors[v] = c
			if assign(v + 1) {
				return true
			}
			colors[v] = -1
		}
		return false
	}

	if !assign(0) {
		return nil, false
	}
	return colors, true
}

func clashes(neighbors, colors []int, v, c int) bool {
	for _, u := range neighbors {
		if u == v || colors[u] == c {
			return true
		}
	}
	return false
}
