package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/castcolor/pkg/coloring"
	cerrors "github.com/matzehuels/castcolor/pkg/errors"
)

func triangle(colors int) *coloring.Instance {
	g, err := coloring.New(3, []coloring.Edge{{0, 1}, {1, 2}, {2, 0}}, colors)
	if err != nil {
		panic(err)
	}
	return g
}

func TestNew_UnknownVertex(t *testing.T) {
	_, err := coloring.New(2, []coloring.Edge{{0, 2}}, 1)
	assert.ErrorIs(t, err, coloring.ErrUnknownVertex)

	_, err = coloring.New(2, []coloring.Edge{{-1, 0}}, 1)
	assert.ErrorIs(t, err, coloring.ErrUnknownVertex)
}

func TestNew_CopiesEdges(t *testing.T) {
	edges := []coloring.Edge{{0, 1}}
	g, err := coloring.New(2, edges, 2)
	require.NoError(t, err)
	edges[0].To = 0
	assert.Equal(t, []coloring.Edge{{0, 1}}, g.Edges)
}

func TestTouched(t *testing.T) {
	g, err := coloring.New(6, []coloring.Edge{{4, 1}, {1, 5}}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 5}, g.Touched())

	empty, err := coloring.New(3, nil, 2)
	require.NoError(t, err)
	assert.Empty(t, empty.Touched())
}

func TestNeighbors(t *testing.T) {
	g, err := coloring.New(3, []coloring.Edge{{0, 1}, {0, 1}, {2, 2}}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1}, {0, 0}, {2}}, g.Neighbors())
}

func TestVerify(t *testing.T) {
	g := triangle(3)
	assert.NoError(t, g.Verify([]int{0, 1, 2}))

	tests := []struct {
		name   string
		colors []int
	}{
		{"short", []int{0, 1}},
		{"out of palette", []int{0, 1, 3}},
		{"negative", []int{0, 1, -1}},
		{"adjacent equal", []int{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Verify(tt.colors)
			require.Error(t, err)
			assert.True(t, cerrors.Is(err, cerrors.ErrCodeInvalidSolution))
		})
	}
}

func TestColorable(t *testing.T) {
	tests := []struct {
		name string
		g    *coloring.Instance
		want bool
	}{
		{"triangle 3", triangle(3), true},
		{"triangle 2", triangle(2), false},
		{"no vertices", &coloring.Instance{}, true},
		{"no colors isolated", &coloring.Instance{Vertices: 1}, false},
		{"self loop", &coloring.Instance{Vertices: 1, Edges: []coloring.Edge{{0, 0}}, Colors: 3}, false},
		{"square 2", &coloring.Instance{Vertices: 4, Edges: []coloring.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, Colors: 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, ok := tt.g.Colorable()
			assert.Equal(t, tt.want, ok)
			if ok {
				assert.NoError(t, tt.g.Verify(colors))
			} else {
				assert.Nil(t, colors)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	g, err := coloring.New(6, []coloring.Edge{{4, 1}, {1, 5}}, 2)
	require.NoError(t, err)

	sub, original := g.Compact()
	assert.Equal(t, []int{1, 4, 5}, original)
	assert.Equal(t, 3, sub.Vertices)
	assert.Equal(t, 2, sub.Colors)
	assert.Equal(t, []coloring.Edge{{From: 1, To: 0}, {From: 0, To: 2}}, sub.Edges)
}
