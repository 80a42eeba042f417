// Package casting models the casting problem and enumerates its solutions.
//
// # Overview
//
// A casting instance has roles, scenes and actors. Every role has a
// potential-actor set; every scene lists the roles that appear together in
// it. A complete assignment binds every role to one of its potential actors
// such that no actor plays two roles of the same scene.
//
// # Search
//
// [Search] walks the full state tree depth-first. The branching at each state
// is every feasible (role, actor) pair across all unassigned roles, as
// returned by [Instance.Options]; it is not a per-variable decision tree, so a
// complete assignment can be reached along several orderings. [Result] keeps
// distinct assignments in first-discovery order and counts every accepting
// leaf in [Stats]. Pass [WithDuplicates] to get the raw leaf sequence.
//
//	inst, _ := casting.New(
//	    [][]int{{0}, {1}},   // role potentials
//	    [][]int{{0, 1}},     // scenes
//	    2,                   // actor count
//	)
//	res, err := casting.Search(ctx, inst)
//	// res.Solutions == [][]int{{0, 1}}
//
// # Leads
//
// [Instance.FilterLeads] applies the secondary rule that actors [LeadA] and
// [LeadB] never share a scene.
//
// # Contract violations
//
// [Instance.FeasibleActors] panics when asked about a role that is already
// assigned. The search never does this; the panic signals a defect in the
// caller, not bad input.
package casting
