package reduce

import (
	"github.com/matzehuels/castcolor/pkg/casting"
	"github.com/matzehuels/castcolor/pkg/coloring"
)

// Gadget sizes of [ToCasting].
const (
	BaseActors = 3
	BaseRoles  = 3
	BaseScenes = 2
)

// Casting is the result of [ToCasting].
type Casting struct {
	Instance *casting.Instance

	// VertexRoles maps each touched vertex to its role index.
	VertexRoles map[int]int
}

// ToCasting builds the casting instance equivalent to g.
//
// Roles 0..2 are the base roles, role i playable only by actor i. They are
// followed by one role per touched vertex in ascending vertex order, each
// playable by actors 3..actors-1, where actors is min(g.Colors+3, roles).
// Scenes {0, 2} and {1, 2} come first, then one scene per edge holding the
// roles of its endpoints. Isolated vertices get no role.
func ToCasting(g *coloring.Instance) *Casting {
	touched := g.Touched()
	vertexRoles := make(map[int]int, len(touched))
	for i, v := range touched {
		vertexRoles[v] = BaseRoles + i
	}

	roles := BaseRoles + len(touched)
	actors := min(g.Colors+BaseActors, roles)

	potentials := make([][]int, 0, roles)
	for i := 0; i < BaseRoles; i++ {
		potentials = append(potentials, []int{i})
	}
	palette := make([]int, 0, max(actors-BaseActors, 0))
	for a := BaseActors; a < actors; a++ {
		palette = append(palette, a)
	}
	for range touched {
		potentials = append(potentials, palette)
	}

	scenes := make([][]int, 0, BaseScenes+len(g.Edges))
	scenes = append(scenes, []int{0, 2}, []int{1, 2})
	for _, e := range g.Edges {
		scenes = append(scenes, []int{vertexRoles[e.From], vertexRoles[e.To]})
	}

	// Every index above is in range by construction.
	return &Casting{
		Instance:    casting.MustNew(potentials, scenes, actors),
		VertexRoles: vertexRoles,
	}
}

// ColoringFromCasting maps a solution of a [ToCasting] instance back to a
// coloring of the original graph's vertices. Vertex roles played by actor a
// get color a-3; isolated vertices get color 0.
func ColoringFromCasting(solution []int, vertexRoles map[int]int, vertices int) []int {
	colors := make([]int, vertices)
	for v, role := range vertexRoles {
		colors[v] = solution[role] - BaseActors
	}
	return colors
}
