package resolvex

import "context"

// Catch intercepts failures of the inner provider. The translator runs only
// when the inner provider fails, receiving the failed identifier and the
// error; it may recover (return a substitute value and nil), rethrow the
// same error, or return a different one (error-type translation). Successful
// resolutions bypass the translator entirely.
func Catch[K comparable, V any](p Provider[K, V], translate func(id K, err error) (V, error)) Provider[K, V] {
	return catchProvider[K, V]{inner: p, translate: translate}
}

// Fallback is the never-failing form of Catch: the recovery function cannot
// return an error, so the composed provider cannot fail. This is the "no
// failure possible" case expressed in the signature rather than the type
// system.
func Fallback[K comparable, V any](p Provider[K, V], substitute func(id K, err error) V) Provider[K, V] {
	return Catch(p, func(id K, err error) (V, error) {
		return substitute(id, err), nil
	})
}

// CatchContext is Catch for blocking providers with a translator that may
// itself block (retry against another backend, fetch a placeholder, ...).
func CatchContext[K comparable, V any](p ProviderContext[K, V], translate func(ctx context.Context, id K, err error) (V, error)) ProviderContext[K, V] {
	return catchProviderCtx[K, V]{inner: p, translate: translate}
}

// CatchSync is CatchContext with a translator that runs synchronously: no
// further blocking happens between the inner failure and the translated
// result. Callers pick CatchContext or CatchSync based on whether recovery
// needs more slow work.
func CatchSync[K comparable, V any](p ProviderContext[K, V], translate func(id K, err error) (V, error)) ProviderContext[K, V] {
	return catchProviderCtx[K, V]{
		inner: p,
		translate: func(_ context.Context, id K, err error) (V, error) {
			return translate(id, err)
		},
	}
}

// FallbackContext is the never-failing form for blocking providers. The
// substitute function is synchronous.
func FallbackContext[K comparable, V any](p ProviderContext[K, V], substitute func(id K, err error) V) ProviderContext[K, V] {
	return CatchSync(p, func(id K, err error) (V, error) {
		return substitute(id, err), nil
	})
}

type catchProvider[K comparable, V any] struct {
	inner     Provider[K, V]
	translate func(K, error) (V, error)
}

func (p catchProvider[K, V]) Resolve(id K) (V, error) {
	v, err := p.inner.Resolve(id)
	if err == nil {
		return v, nil
	}
	return p.translate(id, err)
}

type catchProviderCtx[K comparable, V any] struct {
	inner     ProviderContext[K, V]
	translate func(context.Context, K, error) (V, error)
}

func (p catchProviderCtx[K, V]) ResolveContext(ctx context.Context, id K) (V, error) {
	v, err := p.inner.ResolveContext(ctx, id)
	if err == nil {
		return v, nil
	}
	return p.translate(ctx, id, err)
}
