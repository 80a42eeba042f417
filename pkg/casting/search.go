package casting

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// ErrSearchLimit is returned by [Search] when [WithMaxNodes] is set and the
// search visits more states than allowed.
var ErrSearchLimit = errors.New("search node limit exceeded")

// Stats describes the explored state tree.
type Stats struct {
	Nodes      int // states visited, root and leaves included
	Leaves     int // accepting leaves, duplicates included
	DeadEnds   int // states with unbound roles and no options
	Duplicates int // accepting leaves whose assignment was already found
}

// Result holds the outcome of [Search].
type Result struct {
	// Solutions are complete assignments in discovery order. Without
	// [WithDuplicates] each assignment appears once.
	Solutions [][]int
	Stats     Stats
}

// SearchOption configures [Search].
type SearchOption func(*searchConfig)

type searchConfig struct {
	duplicates bool
	maxNodes   int
}

// WithDuplicates keeps every accepting leaf in Result.Solutions, including
// assignments reached again along a different binding order.
func WithDuplicates() SearchOption {
	return func(c *searchConfig) { c.duplicates = true }
}

// WithMaxNodes aborts the search with [ErrSearchLimit] after n states.
// Zero or a negative n means unlimited.
func WithMaxNodes(n int) SearchOption {
	return func(c *searchConfig) { c.maxNodes = n }
}

// Search enumerates every complete valid assignment of inst.
//
// The whole tree is explored; there is no first-solution short-circuit. Each
// branch binds one option on a private copy of its parent's assignment. ctx
// is checked at every state and its error is returned on cancellation. An
// instance without roles has no solutions.
func Search(ctx context.Context, inst *Instance, opts ...SearchOption) (*Result, error) {
	cfg := searchConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	s := &searcher{
		ctx:  ctx,
		inst: inst,
		cfg:  cfg,
		seen: make(map[string]struct{}),
		res:  &Result{Solutions: [][]int{}},
	}
	if err := s.explore(NewAssignment(inst.RoleCount())); err != nil {
		return nil, err
	}
	return s.res, nil
}

// Solve runs [Search] with a background context and no limits and returns
// the distinct solutions.
func Solve(inst *Instance) [][]int {
	res, err := Search(context.Background(), inst)
	if err != nil {
		// Unreachable: no cancellation and no node limit.
		panic(err)
	}
	return res.Solutions
}

type searcher struct {
	ctx  context.Context
	inst *Instance
	cfg  searchConfig
	seen map[string]struct{}
	res  *Result
}

func (s *searcher) visit() error {
	s.res.Stats.Nodes++
	if s.cfg.maxNodes > 0 && s.res.Stats.Nodes > s.cfg.maxNodes {
		return ErrSearchLimit
	}
	return s.ctx.Err()
}

func (s *searcher) explore(a Assignment) error {
	if err := s.visit(); err != nil {
		return err
	}

	options := s.inst.Options(a)
	if len(options) == 0 {
		s.res.Stats.DeadEnds++
		return nil
	}

	for _, o := range options {
		child := a.Bind(o.Role, o.Actor)
		if child.Complete() {
			if err := s.visit(); err != nil {
				return err
			}
			s.record(child)
			continue
		}
		if err := s.explore(child); err != nil {
			return err
		}
	}
	return nil
}

func (s *searcher) record(a Assignment) {
	s.res.Stats.Leaves++
	solution := []int(a)
	if s.cfg.duplicates {
		s.res.Solutions = append(s.res.Solutions, solution)
		return
	}
	key := solutionKey(solution)
	if _, ok := s.seen[key]; ok {
		s.res.Stats.Duplicates++
		return
	}
	s.seen[key] = struct{}{}
	s.res.Solutions = append(s.res.Solutions, solution)
}

func solutionKey(solution []int) string {
	var b strings.Builder
	for i, actor := range solution {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(actor))
	}
	return b.String()
}
