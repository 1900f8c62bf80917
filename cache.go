package resolvex

import "context"

// Cache stores and retrieves values by identifier. It is infallible from the
// combinator's point of view: a backing store that can fail must absorb its
// own errors (reporting them through its Logger/Hooks) and surface a miss.
//
// Store replaces any previous value for the identifier; last write wins, no
// merge semantics. Eviction, capacity and expiry are entirely the concern of
// the concrete implementation.
type Cache[K comparable, V any] interface {
	// Lookup returns (value, true) on hit, (zero, false) on miss.
	Lookup(id K) (V, bool)

	// Store records value under id, replacing any previous entry.
	Store(id K, value V)
}

// CacheContext is the blocking form of Cache, for stores that may wait on
// external work (a remote store, or a Serialized lane).
type CacheContext[K comparable, V any] interface {
	LookupContext(ctx context.Context, id K) (V, bool)
	StoreContext(ctx context.Context, id K, value V)
}

// ConcurrentCache is a Cache safe for concurrent callers.
type ConcurrentCache[K comparable, V any] interface {
	Cache[K, V]
	Concurrent
}

// ConcurrentCacheContext is a CacheContext safe for concurrent callers.
type ConcurrentCacheContext[K comparable, V any] interface {
	CacheContext[K, V]
	Concurrent
}
