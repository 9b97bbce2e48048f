package cache

import "testing"

func TestLRU_EvictsOldest(t *testing.T) {
	c := New[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v", v, ok)
	}
	c.Add("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestLRU_ReplaceAndPurge(t *testing.T) {
	c := New[string, string](4)
	c.Add("k", "old")
	c.Add("k", "new")
	if v, _ := c.Get("k"); v != "new" {
		t.Fatalf("Get(k) = %q, want new", v)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d after replace, want 1", c.Len())
	}

	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("Len = %d after purge", c.Len())
	}
}

func TestNew_PanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New[int, int](0)
}
