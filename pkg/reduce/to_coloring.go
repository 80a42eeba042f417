package reduce

import (
	"github.com/matzehuels/castcolor/pkg/casting"
	"github.com/matzehuels/castcolor/pkg/coloring"
)

// ToColoring returns the conflict graph of inst.
//
// Every unordered pair of roles sharing a scene yields one edge per scene,
// pairs taken in scene order; edges repeated across scenes are kept. The
// color count is one more than the largest actor index referenced by any
// potential-actor set.
func ToColoring(inst *casting.Instance) *coloring.Instance {
	var edges []coloring.Edge
	for s := 0; s < inst.SceneCount(); s++ {
		roles := inst.SceneRoles(s)
		for i := 0; i < len(roles); i++ {
			for j := i + 1; j < len(roles); j++ {
				edges = append(edges, coloring.Edge{From: roles[i], To: roles[j]})
			}
		}
	}
	return &coloring.Instance{
		Vertices: inst.RoleCount(),
		Edges:    edges,
		Colors:   inst.MaxActor() + 1,
	}
}
