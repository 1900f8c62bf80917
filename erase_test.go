package resolvex

import (
	"context"
	"reflect"
	"testing"
)

// compile-time: func adapters satisfy their capabilities, marked forms
// satisfy the marked interfaces.
var (
	_ Provider[string, int]                  = ProviderFunc[string, int](nil)
	_ ConcurrentProvider[string, int]        = ConcurrentProviderFunc[string, int](nil)
	_ ProviderContext[string, int]           = ProviderContextFunc[string, int](nil)
	_ ConcurrentProviderContext[string, int] = ConcurrentProviderContextFunc[string, int](nil)
	_ Cache[string, int]                     = FuncCache[string, int]{}
	_ ConcurrentCache[string, int]           = ConcurrentFuncCache[string, int]{}
	_ CacheContext[string, int]              = FuncCacheContext[string, int]{}
	_ ConcurrentCacheContext[string, int]    = ConcurrentFuncCacheContext[string, int]{}
)

func fnPtr(v any) uintptr { return reflect.ValueOf(v).Pointer() }

// ==============================
// Erasure
// ==============================

func TestEraseProviderForwards(t *testing.T) {
	inner := &countingProvider[string, int]{fn: func(string) (int, error) { return 8, nil }}
	ep := EraseProvider[string, int](inner)

	v, err := ep.Resolve("k")
	if err != nil || v != 8 {
		t.Fatalf("erased Resolve: v=%d err=%v", v, err)
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls=%d, want 1", inner.calls)
	}
}

// TestEraseProviderIdempotent: erasing an already-erased provider returns
// the same function, not another layer of wrapping.
func TestEraseProviderIdempotent(t *testing.T) {
	f := ProviderFunc[string, int](func(string) (int, error) { return 1, nil })
	once := EraseProvider[string, int](f)
	twice := EraseProvider[string, int](once)

	if fnPtr(once) != fnPtr(f) {
		t.Fatalf("first erasure wrapped a ProviderFunc")
	}
	if fnPtr(twice) != fnPtr(once) {
		t.Fatalf("second erasure added indirection")
	}
}

func TestEraseProviderContextIdempotent(t *testing.T) {
	f := ProviderContextFunc[string, int](func(context.Context, string) (int, error) { return 1, nil })
	once := EraseProviderContext[string, int](f)
	twice := EraseProviderContext[string, int](once)

	if fnPtr(once) != fnPtr(f) || fnPtr(twice) != fnPtr(once) {
		t.Fatalf("context erasure not idempotent")
	}
}

func TestEraseCacheIdempotent(t *testing.T) {
	c := newMapCache[string, int]()
	once := EraseCache[string, int](c)
	twice := EraseCache[string, int](once)

	if fnPtr(twice.LookupFunc) != fnPtr(once.LookupFunc) ||
		fnPtr(twice.StoreFunc) != fnPtr(once.StoreFunc) {
		t.Fatalf("cache erasure added indirection")
	}

	once.Store("k", 3)
	if v, ok := twice.Lookup("k"); !ok || v != 3 {
		t.Fatalf("erased cache lost the backing store: ok=%v v=%d", ok, v)
	}
}

func TestEraseConcurrentPreservesMarker(t *testing.T) {
	c := newSyncMapCache[string, int]()
	ec := EraseCacheConcurrent[string, int](c)
	var _ ConcurrentCache[string, int] = ec

	ec.Store("k", 9)
	if v, ok := ec.Lookup("k"); !ok || v != 9 {
		t.Fatalf("marked erased cache: ok=%v v=%d", ok, v)
	}

	p := ConcurrentProviderFunc[string, int](func(string) (int, error) { return 0, nil })
	ep := EraseProviderConcurrent[string, int](p)
	var _ ConcurrentProvider[string, int] = ep
	if fnPtr(EraseProviderConcurrent[string, int](ep)) != fnPtr(ep) {
		t.Fatalf("marked provider erasure not idempotent")
	}
}
