// Package cache memoizes solver and reducer output.
//
// Entries are opaque byte slices addressed by string keys. Keys are built by a
// [Keyer] from a hash of the canonical instance text and the options that
// change the result, so equal instances written with different whitespace or
// separators share an entry.
//
// Two backends are provided, neither of which outlives the process:
//   - [MemoryCache], bounded by a per-entry TTL
//   - [NullCache] when caching is disabled
package cache

import (
	"context"
	"time"
)

// Cache stores byte values by key.
//
// Get reports a miss with ok == false and a nil error. A ttl of zero or less
// passed to Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SolveKeyOpts holds the search options that affect the cached result.
// The lead filter is cheap and applied after lookup, so it is not part of the
// key.
type SolveKeyOpts struct {
	Duplicates bool `json:"duplicates"`
	MaxNodes   int  `json:"max_nodes"`
}

// Keyer builds cache keys.
type Keyer interface {
	// SolveKey addresses a solve report for an instance hash.
	SolveKey(instanceHash string, opts SolveKeyOpts) string
	// ReduceKey addresses the output of one reduction direction.
	ReduceKey(direction, instanceHash string) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolveKey returns "solve:<sha256>" over the hash and options.
func (DefaultKeyer) SolveKey(instanceHash string, opts SolveKeyOpts) string {
	return hashKey("solve", instanceHash, opts)
}

// ReduceKey returns "reduce:<direction>:<hash>".
func (DefaultKeyer) ReduceKey(direction, instanceHash string) string {
	return "reduce:" + direction + ":" + instanceHash
}
