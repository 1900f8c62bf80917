package resolvex

import (
	"context"
	"sync"
)

// Two adapters turn a synchronous Cache into a CacheContext usable from
// concurrent, blocking call sites:
//
//   - AsCacheContext forwards directly; the wrapped cache already carries
//     the Concurrent marker, so no synchronization is added.
//   - NewSerialized wraps a cache that does NOT carry the marker and funnels
//     every operation through one worker goroutine, buying mutual exclusion
//     for stores that are cheap precisely because they assume
//     single-threaded use (weak maps, plain maps).

// AsCacheContext adapts an already-concurrent Cache to the CacheContext
// capability. Calls forward synchronously; ctx is ignored because the
// wrapped cache never blocks.
func AsCacheContext[K comparable, V any](c ConcurrentCache[K, V]) ConcurrentCacheContext[K, V] {
	return passthroughCache[K, V]{c: c}
}

type passthroughCache[K comparable, V any] struct {
	c ConcurrentCache[K, V]
}

func (b passthroughCache[K, V]) LookupContext(_ context.Context, id K) (V, bool) {
	return b.c.Lookup(id)
}

func (b passthroughCache[K, V]) StoreContext(_ context.Context, id K, value V) {
	b.c.Store(id, value)
}

func (passthroughCache[K, V]) ConcurrencySafe() {}

// Serialized is the serializing adapter: all operations execute on a single
// worker goroutine, FIFO within that lane, so at most one operation touches
// the wrapped cache at any instant.
//
// Guarantee: mutual exclusion across all operations submitted to one
// Serialized instance. Non-guarantee: no ordering between operations
// submitted concurrently by independent callers; only operations already
// ordered at the call site keep that order.
//
// Close stops the lane after draining queued operations. The adapter must
// not be used after Close.
type Serialized[K comparable, V any] struct {
	c    Cache[K, V]
	ops  chan func()
	wg   sync.WaitGroup
	once sync.Once
}

var _ ConcurrentCacheContext[string, int] = (*Serialized[string, int])(nil)

// NewSerialized wraps a non-concurrent cache in a single-lane adapter.
func NewSerialized[K comparable, V any](c Cache[K, V]) *Serialized[K, V] {
	s := &Serialized[K, V]{c: c, ops: make(chan func())}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for f := range s.ops {
			f()
		}
	}()
	return s
}

// LookupContext runs the lookup on the lane and waits for it. If ctx is
// cancelled before the operation is scheduled, it reports a miss.
func (s *Serialized[K, V]) LookupContext(ctx context.Context, id K) (V, bool) {
	var (
		v    V
		ok   bool
		done = make(chan struct{})
	)
	select {
	case s.ops <- func() {
		v, ok = s.c.Lookup(id)
		close(done)
	}:
	case <-ctx.Done():
		return v, false
	}
	<-done
	return v, ok
}

// StoreContext runs the store on the lane and waits for it. If ctx is
// cancelled before the operation is scheduled, the store is dropped; the
// Cache contract treats stores as best-effort, so the caller sees nothing.
func (s *Serialized[K, V]) StoreContext(ctx context.Context, id K, value V) {
	done := make(chan struct{})
	select {
	case s.ops <- func() {
		s.c.Store(id, value)
		close(done)
	}:
	case <-ctx.Done():
		return
	}
	<-done
}

func (*Serialized[K, V]) ConcurrencySafe() {}

// Close drains the lane and stops the worker. Safe to call more than once.
func (s *Serialized[K, V]) Close() {
	s.once.Do(func() {
		close(s.ops)
		s.wg.Wait()
	})
}
