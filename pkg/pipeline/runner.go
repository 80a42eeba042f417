package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/castcolor/pkg/cache"
	"github.com/matzehuels/castcolor/pkg/casting"
	cerrors "github.com/matzehuels/castcolor/pkg/errors"
	cio "github.com/matzehuels/castcolor/pkg/io"
	"github.com/matzehuels/castcolor/pkg/observability"
	"github.com/matzehuels/castcolor/pkg/reduce"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL applies to every cache write. Zero means DefaultCacheTTL.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedSearch is the cached form of a search.
type cachedSearch struct {
	Solutions [][]int       `json:"solutions"`
	Stats     casting.Stats `json:"stats"`
}

// Solve parses opts.Instance and runs [Runner.SolveInstance] on it.
func (r *Runner) Solve(ctx context.Context, opts SolveOptions) (*SolveResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	inst, hash, parseTime, err := parseCasting(ctx, logger, opts.Instance)
	if err != nil {
		return nil, err
	}
	res, err := r.solve(ctx, inst, hash, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.ParseTime = parseTime
	return res, nil
}

// SolveInstance searches inst, applies the lead filter when requested and
// verifies every kept solution. Search results are memoized per instance
// and option set; the filter is always reapplied.
func (r *Runner) SolveInstance(ctx context.Context, inst *casting.Instance, opts SolveOptions) (*SolveResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return r.solve(ctx, inst, CastingHash(inst), opts)
}

func (r *Runner) solve(ctx context.Context, inst *casting.Instance, hash string, opts SolveOptions) (res *SolveResult, err error) {
	logger := r.logger(opts)
	res = &SolveResult{RunID: uuid.NewString(), Instance: inst}
	logger = logger.With("run", res.RunID)

	observability.Pipeline().OnSolveStart(ctx, inst.RoleCount(), inst.SceneCount())
	defer func() {
		observability.Pipeline().OnSolveComplete(ctx, observability.SolveEvent{
			Nodes:     res.Search.Nodes,
			Leaves:    res.Search.Leaves,
			Solutions: len(res.Kept),
			CacheHit:  res.CacheHit,
			Duration:  res.Stats.SearchTime,
		}, err)
	}()

	key := r.Keyer.SolveKey(hash, cache.SolveKeyOpts{
		Duplicates: opts.Duplicates,
		MaxNodes:   opts.MaxNodes,
	})

	if !opts.Refresh {
		if cached, ok := r.lookupSearch(ctx, key); ok {
			res.Solutions, res.Search, res.CacheHit = cached.Solutions, cached.Stats, true
		}
	}

	if !res.CacheHit {
		start := time.Now()
		searchOpts := []casting.SearchOption{casting.WithMaxNodes(opts.MaxNodes)}
		if opts.Duplicates {
			searchOpts = append(searchOpts, casting.WithDuplicates())
		}
		out, err := casting.Search(ctx, inst, searchOpts...)
		if errors.Is(err, casting.ErrSearchLimit) {
			return res, cerrors.Wrap(cerrors.ErrCodeSearchLimit, err, "search stopped after %d states", opts.MaxNodes)
		}
		if err != nil {
			return res, err
		}
		res.Solutions, res.Search = out.Solutions, out.Stats
		res.Stats.SearchTime = time.Since(start)

		if data, err := json.Marshal(cachedSearch{Solutions: out.Solutions, Stats: out.Stats}); err == nil {
			_ = r.Cache.Set(ctx, key, data, r.ttl())
		}
	}

	logger.Info("search complete",
		"nodes", res.Search.Nodes,
		"leaves", res.Search.Leaves,
		"solutions", len(res.Solutions),
		"cached", res.CacheHit,
		"duration", res.Stats.SearchTime)

	res.Kept = res.Solutions
	if opts.LeadsApart {
		res.Kept = inst.FilterLeads(res.Solutions)
		logger.Debug("filtered solutions", "before", len(res.Solutions), "after", len(res.Kept))
	}

	for i, sol := range res.Kept {
		if err := inst.Verify(sol); err != nil {
			return res, cerrors.Wrap(cerrors.ErrCodeInternal, err, "solution %d failed verification", i+1)
		}
	}

	res.Report = cio.NewReport(inst, res.Search, len(res.Solutions), res.Kept, opts.LeadsApart)
	return res, nil
}

func (r *Runner) lookupSearch(ctx context.Context, key string) (cachedSearch, bool) {
	var cached cachedSearch
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		return cached, false
	}
	if err := json.Unmarshal(data, &cached); err != nil {
		return cached, false
	}
	return cached, true
}

// Reduce converts instance text in the given direction and returns the
// target instance text. "to-coloring" reads a casting instance and
// "to-casting" a graph-coloring instance.
func (r *Runner) Reduce(ctx context.Context, direction, text string) (res *ReduceResult, err error) {
	if err := ValidateDirection(direction); err != nil {
		return nil, err
	}
	res = &ReduceResult{RunID: uuid.NewString(), Direction: direction}
	logger := r.Logger.With("run", res.RunID)
	start := time.Now()

	observability.Pipeline().OnReduceStart(ctx, direction)
	defer func() {
		res.Duration = time.Since(start)
		observability.Pipeline().OnReduceComplete(ctx, direction, res.Duration, err)
	}()

	var hash string
	var convert func() string
	switch direction {
	case DirectionToColoring:
		inst, h, _, err := parseCasting(ctx, logger, text)
		if err != nil {
			return res, err
		}
		hash = h
		convert = func() string { return cio.FormatColoring(reduce.ToColoring(inst)) }
	case DirectionToCasting:
		g, h, err := parseColoring(ctx, logger, text)
		if err != nil {
			return res, err
		}
		hash = h
		convert = func() string { return cio.FormatCasting(reduce.ToCasting(g).Instance) }
	}

	key := r.Keyer.ReduceKey(direction, hash)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		res.Output, res.CacheHit = string(data), true
	} else {
		res.Output = convert()
		_ = r.Cache.Set(ctx, key, []byte(res.Output), r.ttl())
	}

	logger.Info("reduced instance",
		"direction", direction,
		"bytes", len(res.Output),
		"cached", res.CacheHit)
	return res, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts SolveOptions) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func (r *Runner) ttl() time.Duration {
	if r.TTL == 0 {
		return DefaultCacheTTL
	}
	return r.TTL
}
