package cache

// ScopedKeyer prefixes every key of an inner keyer. The server uses it to
// keep its entries apart from CLI entries when both share a backend, e.g.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "server:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SolveKey returns the prefixed solve key.
func (k *ScopedKeyer) SolveKey(instanceHash string, opts SolveKeyOpts) string {
	return k.prefix + k.inner.SolveKey(instanceHash, opts)
}

// ReduceKey returns the prefixed reduce key.
func (k *ScopedKeyer) ReduceKey(direction, instanceHash string) string {
	return k.prefix + k.inner.ReduceKey(direction, instanceHash)
}
