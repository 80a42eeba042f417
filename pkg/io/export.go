package io

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/castcolor/pkg/casting"
	"github.com/matzehuels/castcolor/pkg/coloring"
)

// WriteCasting encodes inst in the casting text format. The header counts
// come one per line, followed by one "<count> <actor-id>..." line per role
// and one "<count> <role-id>..." line per scene. Ids are 1-indexed.
func WriteCasting(w io.Writer, inst *casting.Instance) error {
	lines := []string{
		strconv.Itoa(inst.RoleCount()),
		strconv.Itoa(inst.SceneCount()),
		strconv.Itoa(inst.ActorCount()),
	}
	for _, actors := range inst.AllPotentials() {
		lines = append(lines, groupLine(actors))
	}
	for _, roles := range inst.AllScenes() {
		lines = append(lines, groupLine(roles))
	}
	return writeLines(w, lines)
}

// WriteColoring encodes g in the graph-coloring text format, one
// "<from> <to>" line per edge. Ids are 1-indexed.
func WriteColoring(w io.Writer, g *coloring.Instance) error {
	lines := []string{
		strconv.Itoa(g.Vertices),
		strconv.Itoa(len(g.Edges)),
		strconv.Itoa(g.Colors),
	}
	for _, e := range g.Edges {
		lines = append(lines, strconv.Itoa(e.From+1)+" "+strconv.Itoa(e.To+1))
	}
	return writeLines(w, lines)
}

// FormatCasting returns the text encoding of inst.
func FormatCasting(inst *casting.Instance) string {
	var b strings.Builder
	_ = WriteCasting(&b, inst)
	return b.String()
}

// FormatColoring returns the text encoding of g.
func FormatColoring(g *coloring.Instance) string {
	var b strings.Builder
	_ = WriteColoring(&b, g)
	return b.String()
}

// ExportCasting writes inst to a file at path.
func ExportCasting(inst *casting.Instance, path string) error {
	return export(path, func(w io.Writer) error { return WriteCasting(w, inst) })
}

// ExportColoring writes g to a file at path.
func ExportColoring(g *coloring.Instance, path string) error {
	return export(path, func(w io.Writer) error { return WriteColoring(w, g) })
}

func export(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func groupLine(ids []int) string {
	parts := make([]string, 0, len(ids)+1)
	parts = append(parts, strconv.Itoa(len(ids)))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id+1))
	}
	return strings.Join(parts, " ")
}

func writeLines(w io.Writer, lines []string) error {
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
