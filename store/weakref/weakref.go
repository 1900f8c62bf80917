// Package weakref backs the resolvex Cache capability with weak pointers:
// entries never keep their values alive, so anything only the cache
// references becomes collectable and later reads as a miss.
//
// The store is cheap and simple precisely because it assumes single-threaded
// use: it does not carry the Concurrent marker. Share it across goroutines
// through resolvex.NewSerialized.
package weakref

import (
	"weak"
)

// Cache maps identifiers to weak pointers. It implements
// resolvex.Cache[K, *V].
type Cache[K comparable, V any] struct {
	m map[K]weak.Pointer[V]
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{m: make(map[K]weak.Pointer[V])}
}

// Lookup returns the value if it is still live. A collected entry is
// removed and reported as a miss.
func (c *Cache[K, V]) Lookup(id K) (*V, bool) {
	p, ok := c.m[id]
	if !ok {
		return nil, false
	}
	v := p.Value()
	if v == nil {
		delete(c.m, id)
		return nil, false
	}
	return v, true
}

func (c *Cache[K, V]) Store(id K, value *V) {
	c.m[id] = weak.Make(value)
}

// Len reports tracked entries, including ones whose value may already be
// collected.
func (c *Cache[K, V]) Len() int { return len(c.m) }
