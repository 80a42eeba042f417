package casting

import "fmt"

// Option is a feasible binding of one unassigned role to one actor.
type Option struct {
	Role  int
	Actor int
}

// FeasibleActors returns, in potential-set order, every actor of role's
// potential-actor set that does not already play an assigned role in any
// scene containing role.
//
// It panics if role is already assigned.
func (in *Instance) FeasibleActors(role int, a Assignment) []int {
	if actor := a[role]; actor != Unassigned {
		panic(fmt.Sprintf("role %d is already assigned to actor %d", role+1, actor+1))
	}

	var feasible []int
	for _, actor := range in.potentials[role] {
		occupied := in.actorScenes(actor, a)
		clash := false
		for _, s := range in.roleScenes[role] {
			if occupied[s] {
				clash = true
				break
			}
		}
		if !clash {
			feasible = append(feasible, actor)
		}
	}
	return feasible
}

// Options returns every feasible (role, actor) pair over the unassigned roles
// of a, roles in ascending order. Nothing is cached between calls.
func (in *Instance) Options(a Assignment) []Option {
	var opts []Option
	for role, actor := range a {
		if actor != Unassigned {
			continue
		}
		for _, candidate := range in.FeasibleActors(role, a) {
			opts = append(opts, Option{Role: role, Actor: candidate})
		}
	}
	return opts
}

// actorScenes marks the scenes in which actor plays some assigned role.
func (in *Instance) actorScenes(actor int, a Assignment) []bool {
	occupied := make([]bool, len(in.scenes))
	for role, bound := range a {
		if bound != actor {
			continue
		}
		for _, s := range in.roleScenes[role] {
			occupied[s] = true
		}
	}
	return occupied
}
