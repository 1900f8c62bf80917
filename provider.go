package resolvex

import "context"

// Provider resolves an identifier to a value, or fails with an error.
//
// A provider is expected to be referentially stable: repeated calls with the
// same identifier should yield equivalent results, otherwise layering a cache
// over it makes no sense. Side effects (network I/O, generation cost) are
// neither implied nor forbidden.
type Provider[K comparable, V any] interface {
	// Resolve returns the value for id. It never blocks on external work
	// beyond the call itself; blocking providers implement ProviderContext.
	Resolve(id K) (V, error)
}

// ProviderContext is the blocking form of Provider. Resolution may wait on
// external work (network, disk, another goroutine); ctx carries cancellation.
// Combinators in this package introduce no cancellation points of their own --
// they only pass ctx through to whatever they wrap.
type ProviderContext[K comparable, V any] interface {
	ResolveContext(ctx context.Context, id K) (V, error)
}

// Concurrent marks a capability whose operations may be invoked from multiple
// goroutines without external locking. It is a promise made by the
// implementation, not something checked at runtime: composition functions
// that require it (CachedConcurrent, AsCacheContext, ...) enforce it through
// their signatures.
type Concurrent interface {
	// ConcurrencySafe does nothing. Implementing it asserts the contract.
	ConcurrencySafe()
}

// ConcurrentProvider is a Provider safe for concurrent callers.
type ConcurrentProvider[K comparable, V any] interface {
	Provider[K, V]
	Concurrent
}

// ConcurrentProviderContext is a ProviderContext safe for concurrent callers.
type ConcurrentProviderContext[K comparable, V any] interface {
	ProviderContext[K, V]
	Concurrent
}
