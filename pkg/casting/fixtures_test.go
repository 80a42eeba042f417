package casting_test

import "github.com/matzehuels/castcolor/pkg/casting"

// smallest: two roles sharing one scene, each with a single candidate.
func smallest() *casting.Instance {
	return casting.MustNew([][]int{{0}, {1}}, [][]int{{0, 1}}, 2)
}

// noInstance has two base solutions; both put the leads in one scene.
func noInstance() *casting.Instance {
	return casting.MustNew(
		[][]int{{0, 1, 2}, {1, 2}, {0, 2}, {1}, {0, 1, 2}},
		[][]int{{0, 1}, {0, 1}, {0, 2, 3}, {2, 4}, {1, 2, 4}},
		3,
	)
}

// yesInstance has two base solutions; one keeps the leads apart.
func yesInstance() *casting.Instance {
	return casting.MustNew(
		[][]int{{0, 2, 3}, {1, 2}, {0, 2}, {1}, {0, 1, 2, 3}, {0, 3}},
		[][]int{{0, 1, 5}, {1, 2, 4}, {1, 3, 5}, {1, 2, 5}, {0, 5}},
		4,
	)
}

// bruteForce counts complete valid assignments by walking the cartesian
// product of the potential-actor sets.
func bruteForce(inst *casting.Instance) int {
	n := inst.RoleCount()
	if n == 0 {
		return 0
	}
	count := 0
	sol := make([]int, n)
	var walk func(role int)
	walk = func(role int) {
		if role == n {
			if inst.Verify(sol) == nil {
				count++
			}
			return
		}
		for _, a := range inst.Potentials(role) {
			sol[role] = a
			walk(role + 1)
		}
	}
	walk(0)
	return count
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
