// Package asynchook decouples hook callbacks from the caller's hot path:
// events are queued and delivered to the wrapped Hooks by worker goroutines.
// The queue is bounded; events are dropped when it is full, never blocking
// the store that emitted them.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{SelfHealEvery: 10})
//	h := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer h.Close()
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/resolvex"
)

type Hooks struct {
	inner resolvex.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ resolvex.Hooks = (*Hooks)(nil)

func New(inner resolvex.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) StoreFault(key, op string, err error) {
	h.try(func() { h.inner.StoreFault(key, op, err) })
}
func (h *Hooks) SelfHeal(key, reason string) { h.try(func() { h.inner.SelfHeal(key, reason) }) }
func (h *Hooks) StoreRejected(key string)    { h.try(func() { h.inner.StoreRejected(key) }) }
