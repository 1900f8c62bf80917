package resolvex

import "context"

// The four composition hooks. Each returns a new provider wrapping the old
// one; failures pass through every hook untouched. Higher combinators
// (Cached, ...) are assembled from these.

// MapID adapts the identifier before resolution: the returned provider
// resolves f(id) on the inner provider.
func MapID[J, K comparable, V any](p Provider[K, V], f func(J) K) Provider[J, V] {
	return mapIDProvider[J, K, V]{inner: p, f: f}
}

// MapValue adapts the value after a successful resolution.
func MapValue[K comparable, V, W any](p Provider[K, V], f func(V) W) Provider[K, W] {
	return mapValueProvider[K, V, W]{inner: p, f: f}
}

// After runs f after every successful resolution, without altering the
// value. Typical use: store the result into a cache.
func After[K comparable, V any](p Provider[K, V], f func(id K, v V)) Provider[K, V] {
	return afterProvider[K, V]{inner: p, f: f}
}

// Interject runs hook before the inner provider; if the hook reports ok, its
// value is returned and the inner provider is never invoked. Typical use:
// cache lookup.
func Interject[K comparable, V any](p Provider[K, V], hook func(id K) (V, bool)) Provider[K, V] {
	return interjectProvider[K, V]{inner: p, hook: hook}
}

type mapIDProvider[J, K comparable, V any] struct {
	inner Provider[K, V]
	f     func(J) K
}

func (p mapIDProvider[J, K, V]) Resolve(id J) (V, error) {
	return p.inner.Resolve(p.f(id))
}

type mapValueProvider[K comparable, V, W any] struct {
	inner Provider[K, V]
	f     func(V) W
}

func (p mapValueProvider[K, V, W]) Resolve(id K) (W, error) {
	v, err := p.inner.Resolve(id)
	if err != nil {
		var zero W
		return zero, err
	}
	return p.f(v), nil
}

type afterProvider[K comparable, V any] struct {
	inner Provider[K, V]
	f     func(K, V)
}

func (p afterProvider[K, V]) Resolve(id K) (V, error) {
	v, err := p.inner.Resolve(id)
	if err != nil {
		return v, err
	}
	p.f(id, v)
	return v, nil
}

type interjectProvider[K comparable, V any] struct {
	inner Provider[K, V]
	hook  func(K) (V, bool)
}

func (p interjectProvider[K, V]) Resolve(id K) (V, error) {
	if v, ok := p.hook(id); ok {
		return v, nil
	}
	return p.inner.Resolve(id)
}

// Context forms of the same hooks. The hook functions take ctx where they
// may reasonably block; value mapping stays synchronous.

func MapIDContext[J, K comparable, V any](p ProviderContext[K, V], f func(J) K) ProviderContext[J, V] {
	return mapIDProviderCtx[J, K, V]{inner: p, f: f}
}

func MapValueContext[K comparable, V, W any](p ProviderContext[K, V], f func(V) W) ProviderContext[K, W] {
	return mapValueProviderCtx[K, V, W]{inner: p, f: f}
}

func AfterContext[K comparable, V any](p ProviderContext[K, V], f func(ctx context.Context, id K, v V)) ProviderContext[K, V] {
	return afterProviderCtx[K, V]{inner: p, f: f}
}

func InterjectContext[K comparable, V any](p ProviderContext[K, V], hook func(ctx context.Context, id K) (V, bool)) ProviderContext[K, V] {
	return interjectProviderCtx[K, V]{inner: p, hook: hook}
}

type mapIDProviderCtx[J, K comparable, V any] struct {
	inner ProviderContext[K, V]
	f     func(J) K
}

func (p mapIDProviderCtx[J, K, V]) ResolveContext(ctx context.Context, id J) (V, error) {
	return p.inner.ResolveContext(ctx, p.f(id))
}

type mapValueProviderCtx[K comparable, V, W any] struct {
	inner ProviderContext[K, V]
	f     func(V) W
}

func (p mapValueProviderCtx[K, V, W]) ResolveContext(ctx context.Context, id K) (W, error) {
	v, err := p.inner.ResolveContext(ctx, id)
	if err != nil {
		var zero W
		return zero, err
	}
	return p.f(v), nil
}

type afterProviderCtx[K comparable, V any] struct {
	inner ProviderContext[K, V]
	f     func(context.Context, K, V)
}

func (p afterProviderCtx[K, V]) ResolveContext(ctx context.Context, id K) (V, error) {
	v, err := p.inner.ResolveContext(ctx, id)
	if err != nil {
		return v, err
	}
	p.f(ctx, id, v)
	return v, nil
}

type interjectProviderCtx[K comparable, V any] struct {
	inner ProviderContext[K, V]
	hook  func(context.Context, K) (V, bool)
}

func (p interjectProviderCtx[K, V]) ResolveContext(ctx context.Context, id K) (V, error) {
	if v, ok := p.hook(ctx, id); ok {
		return v, nil
	}
	return p.inner.ResolveContext(ctx, id)
}

// marked wrappers re-attach the Concurrent marker to a composed provider
// whose parts all carry it. Combinators are stateless, so the assertion
// holds whenever the wrapped pieces hold it.

type markedProvider[K comparable, V any] struct{ Provider[K, V] }

func (markedProvider[K, V]) ConcurrencySafe() {}

type markedProviderCtx[K comparable, V any] struct{ ProviderContext[K, V] }

func (markedProviderCtx[K, V]) ConcurrencySafe() {}
