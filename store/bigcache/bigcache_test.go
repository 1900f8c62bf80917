package bigcache

import (
	"testing"
	"time"

	"github.com/unkn0wn-root/resolvex/codec"
)

type user struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) *Cache[user] {
	t.Helper()
	c, err := New[user](Config{LifeWindow: time.Minute}, codec.JSON[user]{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewRequiresCodec(t *testing.T) {
	if _, err := New[user](Config{LifeWindow: time.Minute}, nil); err == nil {
		t.Fatal("nil codec accepted")
	}
}

func TestStoreLookupRoundtrip(t *testing.T) {
	c := newTestCache(t)

	want := user{ID: "1", Name: "Ada"}
	c.Store("u:1", want)

	got, ok := c.Lookup("u:1")
	if !ok || got != want {
		t.Fatalf("Lookup: ok=%v got=%+v", ok, got)
	}
	if _, ok := c.Lookup("u:2"); ok {
		t.Fatal("hit for absent key")
	}
}

func TestLastWriteWinsAndDelete(t *testing.T) {
	c := newTestCache(t)

	c.Store("k", user{ID: "1"})
	c.Store("k", user{ID: "2"})
	if got, ok := c.Lookup("k"); !ok || got.ID != "2" {
		t.Fatalf("Lookup: ok=%v got=%+v", ok, got)
	}

	c.Delete("k")
	if _, ok := c.Lookup("k"); ok {
		t.Fatal("hit after delete")
	}
}
