// Package inflight is the explicit coordination layer the caching
// combinator deliberately lacks: it deduplicates concurrent identical
// in-flight resolutions. While one computation for a key is running, later
// callers join it and receive its result instead of starting their own.
//
// Keep it a separate stage on purpose: resolvex.Cached makes no
// at-most-one-in-flight promise, so compose Dedupe between the cache layer
// and the expensive leaf provider:
//
//	leaf := fetch.New(fetch.Config{})
//	p := resolvex.CachedContextConcurrent[string, []byte](
//	    inflight.Dedupe[string, []byte](leaf, inflight.StringKey),
//	    resolvex.AsCacheContext[string, []byte](shards),
//	)
package inflight

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/unkn0wn-root/resolvex"
)

// StringKey is the identity key function for string identifiers.
func StringKey(s string) string { return s }

// Dedupe wraps a concurrent provider so that concurrent resolutions of the
// same identifier share one inner call. key maps the identifier to the
// dedup key; distinct identifiers must map to distinct keys.
//
// Joiners receive the result (value or error) of the call they joined. The
// inner provider observes the context of whichever caller started the
// computation; if that caller cancels, joined callers see the cancellation
// error too.
func Dedupe[K comparable, V any](p resolvex.ConcurrentProviderContext[K, V], key func(K) string) resolvex.ConcurrentProviderContext[K, V] {
	return &deduper[K, V]{inner: p, key: key}
}

type deduper[K comparable, V any] struct {
	inner resolvex.ConcurrentProviderContext[K, V]
	key   func(K) string
	group singleflight.Group
}

func (d *deduper[K, V]) ResolveContext(ctx context.Context, id K) (V, error) {
	res, err, _ := d.group.Do(d.key(id), func() (any, error) {
		return d.inner.ResolveContext(ctx, id)
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

func (*deduper[K, V]) ConcurrencySafe() {}
