package cache

import (
	"testing"
	"time"
)

func TestGetAdd(t *testing.T) {
	c := New[string](10, time.Minute, true)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Add("k", "v")
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Fatalf("Get() = %q (hit=%v), want v", got, ok)
	}
}

func TestDisabledCacheNeverStores(t *testing.T) {
	c := New[int](10, time.Minute, false)
	c.Add("k", 1)
	if _, ok := c.Get("k"); ok {
		t.Fatal("disabled cache should always miss")
	}
	if c.Len() != 0 {
		t.Fatalf("disabled cache reported length %d", c.Len())
	}
}

func TestCapacityEviction(t *testing.T) {
	c := New[int](2, time.Minute, true)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	if _, ok := c.Get("a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("newest entry should survive eviction")
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New[int](10, 20*time.Millisecond, true)
	c.Add("k", 1)
	time.Sleep(50 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry should have expired")
	}
}

func TestPurge(t *testing.T) {
	c := New[int](10, time.Minute, true)
	c.Add("k", 1)
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("Len() = %d after purge", c.Len())
	}
}

func TestQueryKey(t *testing.T) {
	got := QueryKey("search", "ru", "Охотское Море")
	want := "search:ru:охотское море"
	if got != want {
		t.Errorf("QueryKey() = %q, want %q", got, want)
	}
}

func TestIDKeyOrderInsensitive(t *testing.T) {
	a := IDKey("batch", "en", []int64{3, 1, 2})
	b := IDKey("batch", "en", []int64{2, 3, 1})
	if a != b {
		t.Errorf("id key depends on input order: %q vs %q", a, b)
	}

	qa := IDKey("wikidata", "en", []string{"Q2", "Q1"})
	qb := IDKey("wikidata", "en", []string{"Q1", "Q2"})
	if qa != qb {
		t.Errorf("string id key depends on input order: %q vs %q", qa, qb)
	}
}
