package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/castcolor/pkg/casting"
)

// Report is the machine-readable outcome of a solve.
type Report struct {
	Roles      int  `json:"roles"`
	Scenes     int  `json:"scenes"`
	Actors     int  `json:"actors"`
	LeadsApart bool `json:"leads_apart"`

	// Total counts solutions before the lead filter, Found after it.
	Total int `json:"total"`
	Found int `json:"found"`

	Stats ReportStats `json:"stats"`

	// Solutions are the kept solutions, 1-indexed: Solutions[i][r] is the
	// actor playing role r+1.
	Solutions [][]int `json:"solutions"`
}

// ReportStats mirrors [casting.Stats].
type ReportStats struct {
	Nodes      int `json:"nodes"`
	Leaves     int `json:"leaves"`
	DeadEnds   int `json:"dead_ends"`
	Duplicates int `json:"duplicates"`
}

// NewReport builds a report for inst. total is the number of solutions the
// search produced and kept the solutions left after filtering, 0-indexed.
func NewReport(inst *casting.Instance, stats casting.Stats, total int, kept [][]int, leadsApart bool) Report {
	sols := make([][]int, len(kept))
	for i, s := range kept {
		sols[i] = oneIndexed(s)
	}
	return Report{
		Roles:      inst.RoleCount(),
		Scenes:     inst.SceneCount(),
		Actors:     inst.ActorCount(),
		LeadsApart: leadsApart,
		Total:      total,
		Found:      len(kept),
		Stats: ReportStats{
			Nodes:      stats.Nodes,
			Leaves:     stats.Leaves,
			DeadEnds:   stats.DeadEnds,
			Duplicates: stats.Duplicates,
		},
		Solutions: sols,
	}
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteSummary prints the solver output for 0-indexed solutions:
//
//	Found 2 solutions
//	Role 1 is played by actor 1
//	...
//
// Only the first solution is spelled out. An empty list prints
// "No solution found".
func WriteSummary(w io.Writer, solutions [][]int) error {
	if len(solutions) == 0 {
		_, err := fmt.Fprintln(w, "No solution found")
		return err
	}
	if _, err := fmt.Fprintf(w, "Found %d solutions\n", len(solutions)); err != nil {
		return err
	}
	for role, actor := range solutions[0] {
		if _, err := fmt.Fprintf(w, "Role %d is played by actor %d\n", role+1, actor+1); err != nil {
			return err
		}
	}
	return nil
}

func oneIndexed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = v + 1
	}
	return out
}
