package casting

// The two lead actors that [Instance.FilterLeads] keeps out of each other's
// scenes.
const (
	LeadA = 0
	LeadB = 1
)

// ActorsApart reports whether actors x and y never appear in the same scene
// under the complete assignment solution.
func (in *Instance) ActorsApart(solution []int, x, y int) bool {
	a := Assignment(solution)
	xs := in.actorScenes(x, a)
	ys := in.actorScenes(y, a)
	for s := range xs {
		if xs[s] && ys[s] {
			return false
		}
	}
	return true
}

// LeadsApart reports whether [LeadA] and [LeadB] share no scene.
func (in *Instance) LeadsApart(solution []int) bool {
	return in.ActorsApart(solution, LeadA, LeadB)
}

// FilterLeads returns the solutions that satisfy [Instance.LeadsApart],
// preserving order. The input is not modified.
func (in *Instance) FilterLeads(solutions [][]int) [][]int {
	kept := make([][]int, 0, len(solutions))
	for _, sol := range solutions {
		if in.LeadsApart(sol) {
			kept = append(kept, sol)
		}
	}
	return kept
}
