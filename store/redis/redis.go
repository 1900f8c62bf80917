// Package redis backs the resolvex CacheContext capability with
// redis/go-redis. Transport and server errors are absorbed per the Cache
// contract: lookups degrade to misses, stores become no-ops, and every
// absorbed fault surfaces through Logger/Hooks.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/resolvex"
	"github.com/unkn0wn-root/resolvex/codec"
	"github.com/unkn0wn-root/resolvex/internal/util"
)

var ErrNilClient = errors.New("redis store: nil client")

type Config[V any] struct {
	// Required.
	Client    goredis.UniversalClient
	Codec     codec.Codec[V]
	Namespace string // key prefix to avoid collisions, e.g. "thumb"

	TTL         time.Duration   // 0 => 10m
	Logger      resolvex.Logger // nil => NopLogger
	Hooks       resolvex.Hooks  // nil => NopHooks
	CloseClient bool            // set true only if this store exclusively owns the client
}

// Cache implements resolvex.ConcurrentCacheContext[string, V].
type Cache[V any] struct {
	rdb         goredis.UniversalClient
	codec       codec.Codec[V]
	ns          string
	ttl         time.Duration
	log         resolvex.Logger
	hooks       resolvex.Hooks
	closeClient bool
}

var _ resolvex.ConcurrentCacheContext[string, int] = (*Cache[int])(nil)

func New[V any](cfg Config[V]) (*Cache[V], error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Codec == nil {
		return nil, errors.New("redis store: codec is required")
	}
	if cfg.Namespace == "" {
		return nil, errors.New("redis store: namespace is required")
	}
	return &Cache[V]{
		rdb:         cfg.Client,
		codec:       cfg.Codec,
		ns:          cfg.Namespace,
		ttl:         util.Coalesce(cfg.TTL, 10*time.Minute),
		log:         util.Coalesce[resolvex.Logger](cfg.Logger, resolvex.NopLogger{}),
		hooks:       util.Coalesce[resolvex.Hooks](cfg.Hooks, resolvex.NopHooks{}),
		closeClient: cfg.CloseClient,
	}, nil
}

func (p *Cache[V]) key(id string) string { return p.ns + ":" + id }

func (p *Cache[V]) LookupContext(ctx context.Context, id string) (V, bool) {
	var zero V
	k := p.key(id)
	b, err := p.rdb.Get(ctx, k).Bytes()
	if errors.Is(err, goredis.Nil) {
		return zero, false
	}
	if err != nil {
		p.log.Warn("redis lookup failed", resolvex.Fields{"key": k, "err": err})
		p.hooks.StoreFault(k, "lookup", err)
		return zero, false
	}
	v, err := p.codec.Decode(b)
	if err != nil {
		// self-heal corrupt entry
		_ = p.rdb.Del(ctx, k).Err()
		p.hooks.SelfHeal(k, "decode")
		return zero, false
	}
	return v, true
}

func (p *Cache[V]) StoreContext(ctx context.Context, id string, value V) {
	k := p.key(id)
	b, err := p.codec.Encode(value)
	if err != nil {
		p.log.Warn("redis encode failed", resolvex.Fields{"key": k, "err": err})
		p.hooks.StoreFault(k, "store", err)
		return
	}
	if err := p.rdb.Set(ctx, k, b, p.ttl).Err(); err != nil {
		p.log.Warn("redis store failed", resolvex.Fields{"key": k, "err": err})
		p.hooks.StoreFault(k, "store", err)
	}
}

func (*Cache[V]) ConcurrencySafe() {}

// Delete removes an entry (best-effort).
func (p *Cache[V]) Delete(ctx context.Context, id string) {
	k := p.key(id)
	if err := p.rdb.Del(ctx, k).Err(); err != nil {
		p.hooks.StoreFault(k, "delete", err)
	}
}

// Close releases the underlying redis client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Cache[V]) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
