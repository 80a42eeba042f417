package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/castcolor/pkg/coloring"
)

// Palette holds the fill colors for color indices 0, 1, 2, ... Indices past
// the end wrap around.
var Palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
	"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

// Options configures node-link diagram rendering.
type Options struct {
	// Colors assigns a color index to each vertex. Nil leaves vertices
	// unfilled; negative entries mark uncolored vertices.
	Colors []int

	// Labels overrides the vertex labels. Missing entries fall back to the
	// 1-indexed vertex number.
	Labels []string

	// Name is the DOT graph name. Defaults to "G".
	Name string
}

// ToDOT converts g to Graphviz DOT source.
// The result can be rendered with [RenderSVG].
func ToDOT(g *coloring.Instance, opts Options) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "strict graph %q {\n", name)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for v := 0; v < g.Vertices; v++ {
		attrs := fmtAttrs(v, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(v), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(e.From), nodeID(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ColorOf returns the palette entry for color index c.
func ColorOf(c int) string {
	return Palette[c%len(Palette)]
}

func nodeID(v int) string {
	return "v" + strconv.Itoa(v+1)
}

func fmtAttrs(v int, opts Options) []string {
	label := strconv.Itoa(v + 1)
	if v < len(opts.Labels) && opts.Labels[v] != "" {
		label = opts.Labels[v]
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if v < len(opts.Colors) && opts.Colors[v] >= 0 {
		c := opts.Colors[v]
		attrs = append(attrs,
			fmt.Sprintf("fillcolor=%q", ColorOf(c)),
			fmt.Sprintf("tooltip=%q", "color "+strconv.Itoa(c+1)))
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag to a zero-origin viewBox with
// matching width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
