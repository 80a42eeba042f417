package io

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/castcolor/pkg/casting"
	"github.com/matzehuels/castcolor/pkg/coloring"
	cerrors "github.com/matzehuels/castcolor/pkg/errors"
)

// ReadCasting decodes a casting instance from r. See the package
// documentation for the format. ReadCasting does not close r.
func ReadCasting(r io.Reader) (*casting.Instance, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return decodeCasting(src)
}

// ParseCasting decodes a casting instance from s.
func ParseCasting(s string) (*casting.Instance, error) {
	return decodeCasting([]byte(s))
}

// ImportCasting reads a casting instance from the file at path.
func ImportCasting(path string) (*casting.Instance, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCasting(f)
}

// ReadColoring decodes a graph-coloring instance from r. See the package
// documentation for the format. ReadColoring does not close r.
func ReadColoring(r io.Reader) (*coloring.Instance, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return decodeColoring(src)
}

// ParseColoring decodes a graph-coloring instance from s.
func ParseColoring(s string) (*coloring.Instance, error) {
	return decodeColoring([]byte(s))
}

// ImportColoring reads a graph-coloring instance from the file at path.
func ImportColoring(path string) (*coloring.Instance, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadColoring(f)
}

func decodeCasting(src []byte) (*casting.Instance, error) {
	nums := newNumbers(src)
	roles, err := nums.next("number of roles")
	if err != nil {
		return nil, err
	}
	scenes, err := nums.next("number of scenes")
	if err != nil {
		return nil, err
	}
	actors, err := nums.next("number of actors")
	if err != nil {
		return nil, err
	}

	potentials := make([][]int, 0, min(roles, len(src)))
	for r := 0; r < roles; r++ {
		group, err := nums.group(fmt.Sprintf("role %d", r+1), "actor", 0)
		if err != nil {
			return nil, err
		}
		potentials = append(potentials, group)
	}

	sceneRoles := make([][]int, 0, min(scenes, len(src)))
	for s := 0; s < scenes; s++ {
		group, err := nums.group(fmt.Sprintf("scene %d", s+1), "role", roles)
		if err != nil {
			return nil, err
		}
		sceneRoles = append(sceneRoles, group)
	}

	inst, err := casting.New(potentials, sceneRoles, actors)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "invalid casting instance")
	}
	return inst, nil
}

func decodeColoring(src []byte) (*coloring.Instance, error) {
	nums := newNumbers(src)
	vertices, err := nums.next("number of vertices")
	if err != nil {
		return nil, err
	}
	edgeCount, err := nums.next("number of edges")
	if err != nil {
		return nil, err
	}
	colors, err := nums.next("number of colors")
	if err != nil {
		return nil, err
	}

	edges := make([]coloring.Edge, 0, min(edgeCount, len(src)))
	for i := 0; i < edgeCount; i++ {
		from, err := nums.id(fmt.Sprintf("edge %d start vertex", i+1), "vertex", vertices)
		if err != nil {
			return nil, err
		}
		to, err := nums.id(fmt.Sprintf("edge %d end vertex", i+1), "vertex", vertices)
		if err != nil {
			return nil, err
		}
		edges = append(edges, coloring.Edge{From: from, To: to})
	}

	g, err := coloring.New(vertices, edges, colors)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "invalid graph-coloring instance")
	}
	return g, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
