// Package bigcache backs the resolvex Cache capability with
// allegro/bigcache: a concurrent byte store with a global life window.
// Values pass through a Codec; undecodable entries self-heal (delete on
// read) and every absorbed fault surfaces through Logger/Hooks.
package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/resolvex"
	"github.com/unkn0wn-root/resolvex/codec"
)

type Config struct {
	// LifeWindow is the global entry lifetime (bigcache has no per-entry TTL).
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited

	Logger resolvex.Logger // nil => NopLogger
	Hooks  resolvex.Hooks  // nil => NopHooks
}

// Cache implements resolvex.ConcurrentCache[string, V].
type Cache[V any] struct {
	c     *bc.BigCache
	codec codec.Codec[V]
	log   resolvex.Logger
	hooks resolvex.Hooks
}

var _ resolvex.ConcurrentCache[string, int] = (*Cache[int])(nil)

func New[V any](cfg Config, cdc codec.Codec[V]) (*Cache[V], error) {
	if cdc == nil {
		return nil, errors.New("bigcache: codec is required")
	}
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = resolvex.NopLogger{}
	}
	hooks := cfg.Hooks
	if hooks == nil {
		hooks = resolvex.NopHooks{}
	}
	return &Cache[V]{c: c, codec: cdc, log: log, hooks: hooks}, nil
}

func (p *Cache[V]) Lookup(id string) (V, bool) {
	var zero V
	b, err := p.c.Get(id)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return zero, false
	}
	if err != nil {
		p.log.Warn("bigcache lookup failed", resolvex.Fields{"key": id, "err": err})
		p.hooks.StoreFault(id, "lookup", err)
		return zero, false
	}
	v, err := p.codec.Decode(b)
	if err != nil {
		_ = p.c.Delete(id) // self-heal corrupt
		p.hooks.SelfHeal(id, "decode")
		return zero, false
	}
	return v, true
}

func (p *Cache[V]) Store(id string, value V) {
	b, err := p.codec.Encode(value)
	if err != nil {
		p.log.Warn("bigcache encode failed", resolvex.Fields{"key": id, "err": err})
		p.hooks.StoreFault(id, "store", err)
		return
	}
	if err := p.c.Set(id, b); err != nil {
		p.hooks.StoreFault(id, "store", err)
	}
}

func (*Cache[V]) ConcurrencySafe() {}

// Delete removes an entry (best-effort).
func (p *Cache[V]) Delete(id string) {
	if err := p.c.Delete(id); err != nil && !errors.Is(err, bc.ErrEntryNotFound) {
		p.hooks.StoreFault(id, "delete", err)
	}
}

// Close releases the backing cache.
func (p *Cache[V]) Close() error { return p.c.Close() }
