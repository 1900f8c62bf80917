package inflight

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/unkn0wn-root/resolvex"
)

// TestDedupeCollapsesConcurrentResolves parks the first inner call on a
// gate, lets the other callers pile up behind the same key, and asserts the
// inner provider ran once.
func TestDedupeCollapsesConcurrentResolves(t *testing.T) {
	var calls atomic.Int32
	gate := make(chan struct{})

	inner := resolvex.ConcurrentProviderContextFunc[string, int](func(_ context.Context, id string) (int, error) {
		calls.Add(1)
		<-gate
		return len(id), nil
	})
	p := Dedupe[string, int](inner, StringKey)

	const callers = 10
	var wg sync.WaitGroup
	results := make([]int, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = p.ResolveContext(context.Background(), "abc")
		}(i)
	}

	// let the callers join the in-flight computation, then release it
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil || results[i] != 3 {
			t.Fatalf("caller %d: v=%d err=%v", i, results[i], errs[i])
		}
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("inner provider ran %d times, want 1", n)
	}
}

func TestDedupeDistinctKeysDoNotShare(t *testing.T) {
	var calls atomic.Int32
	inner := resolvex.ConcurrentProviderContextFunc[string, string](func(_ context.Context, id string) (string, error) {
		calls.Add(1)
		return "v:" + id, nil
	})
	p := Dedupe[string, string](inner, StringKey)

	ctx := context.Background()
	if v, _ := p.ResolveContext(ctx, "a"); v != "v:a" {
		t.Fatalf("got %q", v)
	}
	if v, _ := p.ResolveContext(ctx, "b"); v != "v:b" {
		t.Fatalf("got %q", v)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls=%d, want 2", calls.Load())
	}
}

func TestDedupeSharesFailures(t *testing.T) {
	boom := errors.New("boom")
	inner := resolvex.ConcurrentProviderContextFunc[string, int](func(context.Context, string) (int, error) {
		return 0, boom
	})
	p := Dedupe[string, int](inner, StringKey)

	if _, err := p.ResolveContext(context.Background(), "k"); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
}
