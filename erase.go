package resolvex

import "context"

// Func adapters: one concrete, closure-backed implementation per capability.
// They serve three purposes: adapting a bare function into the capability,
// hiding a deeply nested combinator-built type behind one stable named type,
// and building test doubles. The Concurrent-marked twins exist because the
// marker cannot be inferred from an arbitrary injected function; choosing
// the marked type is the caller's explicit assertion.

// ProviderFunc adapts a function to the Provider capability.
type ProviderFunc[K comparable, V any] func(K) (V, error)

func (f ProviderFunc[K, V]) Resolve(id K) (V, error) { return f(id) }

// ConcurrentProviderFunc is ProviderFunc carrying the Concurrent marker.
type ConcurrentProviderFunc[K comparable, V any] func(K) (V, error)

func (f ConcurrentProviderFunc[K, V]) Resolve(id K) (V, error) { return f(id) }
func (ConcurrentProviderFunc[K, V]) ConcurrencySafe()          {}

// ProviderContextFunc adapts a function to the ProviderContext capability.
type ProviderContextFunc[K comparable, V any] func(context.Context, K) (V, error)

func (f ProviderContextFunc[K, V]) ResolveContext(ctx context.Context, id K) (V, error) {
	return f(ctx, id)
}

// ConcurrentProviderContextFunc is ProviderContextFunc with the marker.
type ConcurrentProviderContextFunc[K comparable, V any] func(context.Context, K) (V, error)

func (f ConcurrentProviderContextFunc[K, V]) ResolveContext(ctx context.Context, id K) (V, error) {
	return f(ctx, id)
}
func (ConcurrentProviderContextFunc[K, V]) ConcurrencySafe() {}

// FuncCache is a Cache backed by injected lookup/store functions.
type FuncCache[K comparable, V any] struct {
	LookupFunc func(K) (V, bool)
	StoreFunc  func(K, V)
}

func (c FuncCache[K, V]) Lookup(id K) (V, bool) { return c.LookupFunc(id) }
func (c FuncCache[K, V]) Store(id K, value V)   { c.StoreFunc(id, value) }

// ConcurrentFuncCache is FuncCache carrying the Concurrent marker.
type ConcurrentFuncCache[K comparable, V any] struct {
	LookupFunc func(K) (V, bool)
	StoreFunc  func(K, V)
}

func (c ConcurrentFuncCache[K, V]) Lookup(id K) (V, bool) { return c.LookupFunc(id) }
func (c ConcurrentFuncCache[K, V]) Store(id K, value V)   { c.StoreFunc(id, value) }
func (ConcurrentFuncCache[K, V]) ConcurrencySafe()        {}

// FuncCacheContext is a CacheContext backed by injected functions.
type FuncCacheContext[K comparable, V any] struct {
	LookupFunc func(context.Context, K) (V, bool)
	StoreFunc  func(context.Context, K, V)
}

func (c FuncCacheContext[K, V]) LookupContext(ctx context.Context, id K) (V, bool) {
	return c.LookupFunc(ctx, id)
}
func (c FuncCacheContext[K, V]) StoreContext(ctx context.Context, id K, value V) {
	c.StoreFunc(ctx, id, value)
}

// ConcurrentFuncCacheContext is FuncCacheContext with the marker.
type ConcurrentFuncCacheContext[K comparable, V any] struct {
	LookupFunc func(context.Context, K) (V, bool)
	StoreFunc  func(context.Context, K, V)
}

func (c ConcurrentFuncCacheContext[K, V]) LookupContext(ctx context.Context, id K) (V, bool) {
	return c.LookupFunc(ctx, id)
}
func (c ConcurrentFuncCacheContext[K, V]) StoreContext(ctx context.Context, id K, value V) {
	c.StoreFunc(ctx, id, value)
}
func (ConcurrentFuncCacheContext[K, V]) ConcurrencySafe() {}

// EraseProvider boxes p behind the func-backed form. Erasing an
// already-erased provider returns it unchanged rather than wrapping again.
func EraseProvider[K comparable, V any](p Provider[K, V]) ProviderFunc[K, V] {
	if f, ok := p.(ProviderFunc[K, V]); ok {
		return f
	}
	return p.Resolve
}

// EraseProviderConcurrent is EraseProvider preserving the marker.
func EraseProviderConcurrent[K comparable, V any](p ConcurrentProvider[K, V]) ConcurrentProviderFunc[K, V] {
	if f, ok := p.(ConcurrentProviderFunc[K, V]); ok {
		return f
	}
	return p.Resolve
}

// EraseProviderContext boxes p behind the func-backed form, idempotently.
func EraseProviderContext[K comparable, V any](p ProviderContext[K, V]) ProviderContextFunc[K, V] {
	if f, ok := p.(ProviderContextFunc[K, V]); ok {
		return f
	}
	return p.ResolveContext
}

// EraseProviderContextConcurrent is EraseProviderContext preserving the marker.
func EraseProviderContextConcurrent[K comparable, V any](p ConcurrentProviderContext[K, V]) ConcurrentProviderContextFunc[K, V] {
	if f, ok := p.(ConcurrentProviderContextFunc[K, V]); ok {
		return f
	}
	return p.ResolveContext
}

// EraseCache boxes c behind FuncCache, idempotently.
func EraseCache[K comparable, V any](c Cache[K, V]) FuncCache[K, V] {
	if fc, ok := c.(FuncCache[K, V]); ok {
		return fc
	}
	return FuncCache[K, V]{LookupFunc: c.Lookup, StoreFunc: c.Store}
}

// EraseCacheConcurrent is EraseCache preserving the marker.
func EraseCacheConcurrent[K comparable, V any](c ConcurrentCache[K, V]) ConcurrentFuncCache[K, V] {
	if fc, ok := c.(ConcurrentFuncCache[K, V]); ok {
		return fc
	}
	return ConcurrentFuncCache[K, V]{LookupFunc: c.Lookup, StoreFunc: c.Store}
}

// EraseCacheContext boxes c behind FuncCacheContext, idempotently.
func EraseCacheContext[K comparable, V any](c CacheContext[K, V]) FuncCacheContext[K, V] {
	if fc, ok := c.(FuncCacheContext[K, V]); ok {
		return fc
	}
	return FuncCacheContext[K, V]{LookupFunc: c.LookupContext, StoreFunc: c.StoreContext}
}

// EraseCacheContextConcurrent is EraseCacheContext preserving the marker.
func EraseCacheContextConcurrent[K comparable, V any](c ConcurrentCacheContext[K, V]) ConcurrentFuncCacheContext[K, V] {
	if fc, ok := c.(ConcurrentFuncCacheContext[K, V]); ok {
		return fc
	}
	return ConcurrentFuncCacheContext[K, V]{LookupFunc: c.LookupContext, StoreFunc: c.StoreContext}
}
