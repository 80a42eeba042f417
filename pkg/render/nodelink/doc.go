// Package nodelink renders graph-coloring instances as node-link diagrams.
//
// # Overview
//
// Vertices are drawn as circles joined by undirected edges. A conflict graph
// produced from a casting instance has one vertex per role and one edge per
// pair of roles sharing a scene, so the diagram doubles as a picture of the
// casting constraints.
//
// # Usage
//
// Convert an instance to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Colors: coloring})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Colors: per-vertex color indices; vertices are filled from [Palette]
//   - Labels: per-vertex labels replacing the 1-indexed vertex number
//   - Name: graph name written into the DOT header
//
// # DOT Format
//
// [ToDOT] emits a strict undirected graph, so parallel edges collapse into
// one line. Self-loops are kept.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
