package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/castcolor/pkg/coloring"
)

func triangle(t *testing.T) *coloring.Instance {
	t.Helper()
	g, err := coloring.New(3, []coloring.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, 3)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(triangle(t), Options{})

	for _, want := range []string{
		`strict graph "G" {`,
		`"v1" [label="1"];`,
		`"v3" [label="3"];`,
		`"v1" -- "v2";`,
		`"v3" -- "v1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("conflict graphs are undirected")
	}
}

func TestToDOTColorsAndLabels(t *testing.T) {
	dot := ToDOT(triangle(t), Options{
		Name:   "roles",
		Colors: []int{0, 1, -1},
		Labels: []string{"lead A", "", "extra"},
	})

	if !strings.Contains(dot, `strict graph "roles" {`) {
		t.Errorf("graph name not applied:\n%s", dot)
	}
	if !strings.Contains(dot, `"v1" [label="lead A", fillcolor="`+Palette[0]+`"`) {
		t.Errorf("v1 should carry label and first palette color:\n%s", dot)
	}
	if !strings.Contains(dot, `"v2" [label="2", fillcolor="`+Palette[1]+`"`) {
		t.Errorf("empty label should fall back to the vertex number:\n%s", dot)
	}
	if !strings.Contains(dot, `"v3" [label="extra"];`) {
		t.Errorf("negative color should leave v3 unfilled:\n%s", dot)
	}
}

func TestColorOfWraps(t *testing.T) {
	if ColorOf(len(Palette)) != Palette[0] {
		t.Errorf("ColorOf(%d) = %s, want %s", len(Palette), ColorOf(len(Palette)), Palette[0])
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 10.00 20.00" width="10" height="20"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("SVG without viewBox should be unchanged")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(triangle(t), Options{Colors: []int{0, 1, 2}}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not SVG")
	}
}
