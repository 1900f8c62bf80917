package resolvex

// Cached composes a provider with a cache. Resolution first consults the
// cache; a hit short-circuits the inner provider entirely. On a miss the
// inner provider runs, and only a successful result is stored before being
// returned. Failures propagate untouched and never store.
//
// The combinator does not deduplicate concurrent misses: two goroutines
// racing on the same absent identifier may both invoke the inner provider
// and both store (last write wins). Callers that need at-most-one-in-flight
// semantics layer the inflight package on top.
//
// Cached itself adds no locking; use it from a single goroutine, or reach
// for CachedConcurrent when both parts carry the Concurrent marker.
func Cached[K comparable, V any](p Provider[K, V], c Cache[K, V]) Provider[K, V] {
	return After(Interject(p, c.Lookup), c.Store)
}

// CachedConcurrent is Cached for concurrent call sites: it requires the
// marker on both parts and the composed provider carries it in turn.
func CachedConcurrent[K comparable, V any](p ConcurrentProvider[K, V], c ConcurrentCache[K, V]) ConcurrentProvider[K, V] {
	return markedProvider[K, V]{Cached[K, V](p, c)}
}

// CachedContext is Cached over the blocking capability pair.
func CachedContext[K comparable, V any](p ProviderContext[K, V], c CacheContext[K, V]) ProviderContext[K, V] {
	return AfterContext(InterjectContext(p, c.LookupContext), c.StoreContext)
}

// CachedContextConcurrent is CachedContext with the marker enforced and
// carried through.
func CachedContextConcurrent[K comparable, V any](p ConcurrentProviderContext[K, V], c ConcurrentCacheContext[K, V]) ConcurrentProviderContext[K, V] {
	return markedProviderCtx[K, V]{CachedContext[K, V](p, c)}
}
