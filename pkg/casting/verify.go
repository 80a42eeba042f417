package casting

import (
	"slices"

	cerrors "github.com/matzehuels/castcolor/pkg/errors"
)

// Verify checks that solution is a complete valid assignment: one actor per
// role, taken from the role's potential-actor set, with pairwise distinct
// actors inside every scene. Failures are INVALID_SOLUTION errors naming the
// first offending role or scene (1-indexed).
func (in *Instance) Verify(solution []int) error {
	if len(solution) != len(in.potentials) {
		return cerrors.New(cerrors.ErrCodeInvalidSolution,
			"solution covers %d roles, instance has %d", len(solution), len(in.potentials))
	}
	for role, actor := range solution {
		if actor == Unassigned {
			return cerrors.New(cerrors.ErrCodeInvalidSolution, "role %d is unassigned", role+1)
		}
		if !slices.Contains(in.potentials[role], actor) {
			return cerrors.New(cerrors.ErrCodeInvalidSolution,
				"role %d cannot be played by actor %d", role+1, actor+1)
		}
	}
	for s, roles := range in.scenes {
		cast := make(map[int]int, len(roles))
		for _, role := range roles {
			actor := solution[role]
			if other, ok := cast[actor]; ok && other != role {
				return cerrors.New(cerrors.ErrCodeInvalidSolution,
					"scene %d: actor %d plays roles %d and %d", s+1, actor+1, other+1, role+1)
			}
			cast[actor] = role
		}
	}
	return nil
}
