// Package resolvex implements a generic value-resolution pipeline: given an
// identifier, produce a value, optionally through layered caching,
// error-translation, and concurrency-bridging stages.
//
// Components:
//   - Provider / ProviderContext: resolve an identifier to a value or an error.
//     Context variants may block; plain variants never do.
//   - Cache / CacheContext: look up and store values by identifier. Infallible
//     from the combinator's point of view (backends absorb their own faults).
//   - Concurrent marker: type-level assertion that a capability may be called
//     from multiple goroutines without external locking.
//   - Combinators: Cached (lookup short-circuits, miss computes then stores),
//     Catch/Fallback (intercept failures), MapID/MapValue/After/Interject
//     (the hooks the higher combinators are built from).
//   - Bridges: Concurrent (pass-through) and Serialized (single worker lane)
//     turn a synchronous Cache into a CacheContext usable from concurrent
//     call sites.
//
// Composition pattern:
//
//	shards := memory.NewSharded[string, Profile](memory.ShardedConfig[string]{})
//	p := resolvex.CachedConcurrent[string, Profile](
//	    resolvex.ConcurrentProviderFunc[string, Profile](loadProfile),
//	    shards,
//	)
//	safe := resolvex.Fallback(p, func(id string, err error) Profile {
//	    return placeholderProfile
//	})
//
// The caching combinator does not deduplicate concurrent misses for the same
// identifier; callers that need at-most-one-in-flight semantics compose the
// separate inflight package on top.
package resolvex
