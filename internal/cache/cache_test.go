package cache

import (
	"testing"
)

func openTestCache(t *testing.T, maxSize int64) *Cache {
	t.Helper()
	c, err := Open(Config{Dir: t.TempDir(), MaxSize: maxSize})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return c
}

func TestCache_PutGet(t *testing.T) {
	c := openTestCache(t, 0)

	page := []byte("<article>rendered</article>")
	hash := HashBytes([]byte("source markdown"))

	if _, ok := c.Get("posts/hello", hash); ok {
		t.Error("Get() on empty cache should miss")
	}

	if err := c.Put("posts/hello", hash, page, nil); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok := c.Get("posts/hello", hash)
	if !ok {
		t.Fatal("Get() should hit after Put()")
	}
	if string(got) != string(page) {
		t.Errorf("Get() = %q, want %q", got, page)
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats = %+v, want 1 hit / 1 miss", stats)
	}
}

func TestCache_StaleHashMisses(t *testing.T) {
	c := openTestCache(t, 0)

	oldHash := HashBytes([]byte("v1"))
	if err := c.Put("posts/hello", oldHash, []byte("old"), nil); err != nil {
		t.Fatal(err)
	}

	newHash := HashBytes([]byte("v2"))
	if _, ok := c.Get("posts/hello", newHash); ok {
		t.Error("Get() with a changed source hash should miss")
	}

	// Put with the new hash replaces the entry
	if err := c.Put("posts/hello", newHash, []byte("new"), nil); err != nil {
		t.Fatal(err)
	}
	got, ok := c.Get("posts/hello", newHash)
	if !ok || string(got) != "new" {
		t.Errorf("Get() after replace = %q, %v", got, ok)
	}
}

func TestCache_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	hash := HashBytes([]byte("source"))

	c, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Put("posts/hello", hash, []byte("rendered"), nil); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	got, ok := reopened.Get("posts/hello", hash)
	if !ok || string(got) != "rendered" {
		t.Errorf("Get() after reopen = %q, %v", got, ok)
	}
}

func TestCache_InvalidateByDependency(t *testing.T) {
	c := openTestCache(t, 0)

	h := HashBytes([]byte("x"))
	if err := c.Put("posts/a", h, []byte("a"), []string{"theme.yml"}); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("posts/b", h, []byte("b"), []string{"theme.yml", "folio.yml"}); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("posts/c", h, []byte("c"), nil); err != nil {
		t.Fatal(err)
	}

	if n := c.InvalidateByDependency("theme.yml"); n != 2 {
		t.Errorf("InvalidateByDependency() = %d, want 2", n)
	}

	if _, ok := c.Get("posts/a", h); ok {
		t.Error("posts/a should be invalidated")
	}
	if _, ok := c.Get("posts/c", h); !ok {
		t.Error("posts/c should survive")
	}
}

func TestCache_LRUEviction(t *testing.T) {
	c := openTestCache(t, 30)

	h := HashBytes([]byte("x"))
	if err := c.Put("a", h, []byte("0123456789"), nil); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("b", h, []byte("0123456789"), nil); err != nil {
		t.Fatal(err)
	}

	// Touch a so b becomes the eviction candidate
	if _, ok := c.Get("a", h); !ok {
		t.Fatal("expected hit on a")
	}

	if err := c.Put("c", h, []byte("01234567890123456789"), nil); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Get("b", h); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a", h); !ok {
		t.Error("a should survive eviction")
	}

	if c.GetStats().Evictions == 0 {
		t.Error("eviction count should be recorded")
	}
}

func TestCache_Clear(t *testing.T) {
	c := openTestCache(t, 0)

	h := HashBytes([]byte("x"))
	if err := c.Put("a", h, []byte("data"), nil); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := c.Get("a", h); ok {
		t.Error("Get() should miss after Clear()")
	}
	if c.GetStats().EntryCount != 0 {
		t.Error("EntryCount should reset after Clear()")
	}
}
