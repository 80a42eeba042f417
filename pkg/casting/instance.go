package casting

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNoRoles is returned by [New] when potentials is nil.
	ErrNoRoles = errors.New("instance has no role list")

	// ErrUnknownRole is returned by [New] when a scene references a role
	// index outside 0..N-1.
	ErrUnknownRole = errors.New("scene references unknown role")

	// ErrInvalidActor is returned by [New] when a potential-actor set
	// contains a negative actor index.
	ErrInvalidActor = errors.New("invalid actor index")
)

// Unassigned marks a role that has not been bound to an actor yet.
const Unassigned = -1

// Instance is an immutable casting instance. All indices are 0-based.
//
// Use [New] to construct one; the zero value has no roles and no scenes.
// The declared actor count is stored but not checked against the actors that
// potential-actor sets reference.
type Instance struct {
	potentials [][]int // role -> potential actors
	scenes     [][]int // scene -> roles
	actorCount int
	roleScenes [][]int // role -> scenes containing it, derived from scenes
}

// New builds an instance from role potential-actor sets, scene role sets and
// the declared actor count. The slices are deep-copied.
func New(potentials, scenes [][]int, actorCount int) (*Instance, error) {
	if potentials == nil {
		return nil, ErrNoRoles
	}
	for r, actors := range potentials {
		for _, a := range actors {
			if a < 0 {
				return nil, fmt.Errorf("role %d: %w: %d", r+1, ErrInvalidActor, a)
			}
		}
	}
	roleScenes := make([][]int, len(potentials))
	for s, roles := range scenes {
		for _, r := range roles {
			if r < 0 || r >= len(potentials) {
				return nil, fmt.Errorf("scene %d: %w: %d", s+1, ErrUnknownRole, r+1)
			}
			if !slices.Contains(roleScenes[r], s) {
				roleScenes[r] = append(roleScenes[r], s)
			}
		}
	}
	return &Instance{
		potentials: cloneGroups(potentials),
		scenes:     cloneGroups(scenes),
		actorCount: actorCount,
		roleScenes: roleScenes,
	}, nil
}

// MustNew is like [New] but panics on error. Intended for fixtures.
func MustNew(potentials, scenes [][]int, actorCount int) *Instance {
	inst, err := New(potentials, scenes, actorCount)
	if err != nil {
		panic(err)
	}
	return inst
}

// RoleCount returns the number of roles.
func (in *Instance) RoleCount() int { return len(in.potentials) }

// SceneCount returns the number of scenes.
func (in *Instance) SceneCount() int { return len(in.scenes) }

// ActorCount returns the declared actor count.
func (in *Instance) ActorCount() int { return in.actorCount }

// Potentials returns a copy of the potential-actor set of role.
func (in *Instance) Potentials(role int) []int { return slices.Clone(in.potentials[role]) }

// SceneRoles returns a copy of the roles appearing in scene.
func (in *Instance) SceneRoles(scene int) []int { return slices.Clone(in.scenes[scene]) }

// RoleScenes returns the scenes containing role, in ascending order.
func (in *Instance) RoleScenes(role int) []int { return slices.Clone(in.roleScenes[role]) }

// AllPotentials returns a deep copy of every role's potential-actor set.
func (in *Instance) AllPotentials() [][]int { return cloneGroups(in.potentials) }

// AllScenes returns a deep copy of every scene's role set.
func (in *Instance) AllScenes() [][]int { return cloneGroups(in.scenes) }

// MaxActor returns the largest actor index referenced by any potential-actor
// set, or -1 when no actor is referenced.
func (in *Instance) MaxActor() int {
	highest := -1
	for _, actors := range in.potentials {
		for _, a := range actors {
			highest = max(highest, a)
		}
	}
	return highest
}

func cloneGroups(groups [][]int) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		out[i] = slices.Clone(g)
		if out[i] == nil {
			out[i] = []int{}
		}
	}
	return out
}

// Assignment maps every role to an actor or [Unassigned].
type Assignment []int

// NewAssignment returns an assignment of n roles with every role unassigned.
func NewAssignment(n int) Assignment {
	a := make(Assignment, n)
	for i := range a {
		a[i] = Unassigned
	}
	return a
}

// Bind returns a copy of a with role bound to actor. a is not modified.
func (a Assignment) Bind(role, actor int) Assignment {
	next := slices.Clone(a)
	next[role] = actor
	return next
}

// Complete reports whether every role is bound.
func (a Assignment) Complete() bool {
	return !slices.Contains(a, Unassigned)
}

// Unbound returns the number of unassigned roles.
func (a Assignment) Unbound() int {
	n := 0
	for _, actor := range a {
		if actor == Unassigned {
			n++
		}
	}
	return n
}
