package memory

import (
	"fmt"
	"sync"
	"testing"
)

func TestMapBasics(t *testing.T) {
	c := NewMap[string, int]()

	if _, ok := c.Lookup("a"); ok {
		t.Fatal("hit on empty map")
	}
	c.Store("a", 1)
	c.Store("a", 2) // last write wins
	if v, ok := c.Lookup("a"); !ok || v != 2 {
		t.Fatalf("Lookup: ok=%v v=%d", ok, v)
	}
	c.Delete("a")
	if _, ok := c.Lookup("a"); ok {
		t.Fatal("hit after delete")
	}
	if c.Len() != 0 {
		t.Fatalf("Len=%d, want 0", c.Len())
	}
}

func TestShardedBasics(t *testing.T) {
	c := NewSharded[string, string](ShardedConfig[string]{})

	c.Store("k", "v1")
	c.Store("k", "v2")
	if v, ok := c.Lookup("k"); !ok || v != "v2" {
		t.Fatalf("Lookup: ok=%v v=%q", ok, v)
	}
	if _, ok := c.Lookup("missing"); ok {
		t.Fatal("hit for absent key")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Fatalf("stats hits=%d misses=%d, want 1/1", hits, misses)
	}
}

func TestShardedLRUEviction(t *testing.T) {
	// single shard, capacity 2: inserting a third key evicts the coldest
	c := NewSharded[string, int](ShardedConfig[string]{
		ShardCount:    1,
		ShardCapacity: 2,
		Hasher:        StringHasher,
	})

	c.Store("a", 1)
	c.Store("b", 2)
	c.Lookup("a") // refresh a; b is now coldest
	c.Store("c", 3)

	if _, ok := c.Lookup("b"); ok {
		t.Fatal("coldest entry survived eviction")
	}
	if v, ok := c.Lookup("a"); !ok || v != 1 {
		t.Fatalf("refreshed entry evicted: ok=%v v=%d", ok, v)
	}
	if v, ok := c.Lookup("c"); !ok || v != 3 {
		t.Fatalf("new entry missing: ok=%v v=%d", ok, v)
	}
	if c.Len() != 2 {
		t.Fatalf("Len=%d, want 2", c.Len())
	}
}

func TestShardedUnboundedWithNegativeCapacity(t *testing.T) {
	c := NewSharded[int, int](ShardedConfig[int]{ShardCount: 1, ShardCapacity: -1})
	for i := 0; i < 10_000; i++ {
		c.Store(i, i)
	}
	if c.Len() != 10_000 {
		t.Fatalf("Len=%d, want 10000", c.Len())
	}
}

func TestShardedConcurrentSoak(t *testing.T) {
	c := NewSharded[string, int](ShardedConfig[string]{ShardCapacity: -1})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				k := fmt.Sprintf("k%d", i%64)
				c.Store(k, i)
				if v, ok := c.Lookup(k); ok && v < 0 {
					t.Errorf("bogus value %d", v)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestShardedPanicsOnBadShardCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic for non-power-of-2 shard count")
		}
	}()
	NewSharded[string, int](ShardedConfig[string]{ShardCount: 3})
}
