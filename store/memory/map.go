// Package memory provides in-memory reference backends for the resolvex
// Cache capability: a plain map for single-goroutine use and a sharded LRU
// for concurrent call sites.
package memory

// Map is the simplest possible backing store: a Go map with no locking, no
// eviction, no expiry. It deliberately does not carry the Concurrent marker;
// use it from one goroutine, or wrap it in resolvex.NewSerialized to share
// it across goroutines.
type Map[K comparable, V any] struct {
	m map[K]V
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

func (c *Map[K, V]) Lookup(id K) (V, bool) {
	v, ok := c.m[id]
	return v, ok
}

func (c *Map[K, V]) Store(id K, value V) {
	c.m[id] = value
}

// Delete removes an entry. Not part of the Cache capability; callers that
// hold the concrete type may invalidate directly.
func (c *Map[K, V]) Delete(id K) {
	delete(c.m, id)
}

// Len reports the number of live entries.
func (c *Map[K, V]) Len() int { return len(c.m) }
