// Package ristretto backs the resolvex Cache capability with
// dgraph-io/ristretto: a concurrent, cost-bounded in-memory cache with
// admission control. Writes may be rejected under pressure; rejections
// surface through Hooks, never to the combinator.
package ristretto

import (
	"context"
	"errors"
	"fmt"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/resolvex"
)

// Config tunes the backing ristretto cache.
type Config[K comparable, V any] struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool

	// TTL applies to every entry; 0 means no expiry.
	TTL time.Duration
	// Cost computes the admission cost per entry; nil => 1.
	Cost func(id K, value V) int64
	// Hooks receives rejected writes and shape self-heals; nil => NopHooks.
	Hooks resolvex.Hooks
}

// Cache implements resolvex.ConcurrentCache[K, V].
type Cache[K comparable, V any] struct {
	c     *rc.Cache
	ttl   time.Duration
	cost  func(K, V) int64
	hooks resolvex.Hooks
}

var _ resolvex.ConcurrentCache[string, int] = (*Cache[string, int])(nil)

func New[K comparable, V any](cfg Config[K, V]) (*Cache[K, V], error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}

	cost := cfg.Cost
	if cost == nil {
		cost = func(K, V) int64 { return 1 }
	}
	hooks := cfg.Hooks
	if hooks == nil {
		hooks = resolvex.NopHooks{}
	}
	return &Cache[K, V]{c: c, ttl: cfg.TTL, cost: cost, hooks: hooks}, nil
}

func (p *Cache[K, V]) Lookup(id K) (V, bool) {
	var zero V
	raw, ok := p.c.Get(id)
	if !ok {
		return zero, false
	}
	v, ok := raw.(V)
	if !ok {
		// drop unexpected entry shape
		p.c.Del(id)
		p.hooks.SelfHeal(fmt.Sprint(id), "shape")
		return zero, false
	}
	return v, true
}

func (p *Cache[K, V]) Store(id K, value V) {
	if !p.c.SetWithTTL(id, value, p.cost(id, value), p.ttl) {
		p.hooks.StoreRejected(fmt.Sprint(id))
	}
}

func (*Cache[K, V]) ConcurrencySafe() {}

// Delete removes an entry.
func (p *Cache[K, V]) Delete(id K) { p.c.Del(id) }

// Wait blocks until buffered writes are applied; mostly useful in tests.
func (p *Cache[K, V]) Wait() { p.c.Wait() }

// Close releases the backing cache.
func (p *Cache[K, V]) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes ristretto metrics when Config.Metrics was set.
func (p *Cache[K, V]) Metrics() *rc.Metrics { return p.c.Metrics }
