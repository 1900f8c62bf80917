package memory

import (
	"container/list"
	"hash/fnv"
	"hash/maphash"
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/resolvex"
)

const (
	// DefaultShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// DefaultShardCapacity is the default maximum entries per shard.
	// 0 disables eviction.
	DefaultShardCapacity = 256
)

// Hasher computes the shard-selection hash for a key.
type Hasher[K comparable] func(K) uint64

// StringHasher computes FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

var comparableSeed = maphash.MakeSeed()

// ComparableHasher hashes any comparable key via hash/maphash. Used when
// ShardedConfig.Hasher is nil.
func ComparableHasher[K comparable](k K) uint64 {
	return maphash.Comparable(comparableSeed, k)
}

// ShardedConfig tunes a Sharded cache. The zero value is usable.
type ShardedConfig[K comparable] struct {
	// ShardCount must be a power of 2; 0 => DefaultShardCount.
	ShardCount int
	// ShardCapacity is the LRU capacity per shard; 0 => DefaultShardCapacity,
	// negative => unbounded.
	ShardCapacity int
	// Hasher selects the shard for a key; nil => ComparableHasher.
	Hasher Hasher[K]
}

// Sharded is a thread-safe, sharded LRU cache: per-shard mutex + LRU list,
// bounded capacity per shard, atomic hit/miss counters. It carries the
// Concurrent marker.
type Sharded[K comparable, V any] struct {
	shards []*shard[K, V]
	mask   uint64
	hash   Hasher[K]

	hits   atomic.Uint64
	misses atomic.Uint64
}

var _ resolvex.ConcurrentCache[string, int] = (*Sharded[string, int])(nil)

type shard[K comparable, V any] struct {
	mu  sync.Mutex
	m   map[K]*list.Element
	lru *list.List // front = most recent
	cap int
}

type lruEntry[K comparable, V any] struct {
	key K
	val V
}

// NewSharded constructs a Sharded cache. Panics if ShardCount is not a
// power of 2.
func NewSharded[K comparable, V any](cfg ShardedConfig[K]) *Sharded[K, V] {
	n := cfg.ShardCount
	if n == 0 {
		n = DefaultShardCount
	}
	if n&(n-1) != 0 {
		panic("memory: ShardCount must be a power of 2")
	}
	capacity := cfg.ShardCapacity
	if capacity == 0 {
		capacity = DefaultShardCapacity
	}
	h := cfg.Hasher
	if h == nil {
		h = ComparableHasher[K]
	}

	s := &Sharded[K, V]{
		shards: make([]*shard[K, V], n),
		mask:   uint64(n - 1),
		hash:   h,
	}
	for i := range s.shards {
		s.shards[i] = &shard[K, V]{
			m:   make(map[K]*list.Element),
			lru: list.New(),
			cap: capacity,
		}
	}
	return s
}

func (s *Sharded[K, V]) shardFor(id K) *shard[K, V] {
	return s.shards[s.hash(id)&s.mask]
}

func (s *Sharded[K, V]) Lookup(id K) (V, bool) {
	sh := s.shardFor(id)
	sh.mu.Lock()
	el, ok := sh.m[id]
	if !ok {
		sh.mu.Unlock()
		s.misses.Add(1)
		var zero V
		return zero, false
	}
	sh.lru.MoveToFront(el)
	v := el.Value.(*lruEntry[K, V]).val
	sh.mu.Unlock()
	s.hits.Add(1)
	return v, true
}

func (s *Sharded[K, V]) Store(id K, value V) {
	sh := s.shardFor(id)
	sh.mu.Lock()
	if el, ok := sh.m[id]; ok {
		el.Value.(*lruEntry[K, V]).val = value
		sh.lru.MoveToFront(el)
		sh.mu.Unlock()
		return
	}
	sh.m[id] = sh.lru.PushFront(&lruEntry[K, V]{key: id, val: value})
	if sh.cap > 0 && sh.lru.Len() > sh.cap {
		oldest := sh.lru.Back()
		sh.lru.Remove(oldest)
		delete(sh.m, oldest.Value.(*lruEntry[K, V]).key)
	}
	sh.mu.Unlock()
}

func (*Sharded[K, V]) ConcurrencySafe() {}

// Delete removes an entry across the Cache capability boundary.
func (s *Sharded[K, V]) Delete(id K) {
	sh := s.shardFor(id)
	sh.mu.Lock()
	if el, ok := sh.m[id]; ok {
		sh.lru.Remove(el)
		delete(sh.m, id)
	}
	sh.mu.Unlock()
}

// Len reports live entries across all shards.
func (s *Sharded[K, V]) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += sh.lru.Len()
		sh.mu.Unlock()
	}
	return n
}

// Stats returns cumulative hit/miss counters.
func (s *Sharded[K, V]) Stats() (hits, misses uint64) {
	return s.hits.Load(), s.misses.Load()
}
