package jlandxml

import "testing"

func testIndex(t *testing.T) *Index {
	t.Helper()
	s := &Surface{internal: squareInternalSurface()}
	idx, err := s.NewIndex()
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	return idx
}

func TestIndexCacheBasic(t *testing.T) {
	cache := NewIndexCache(1024 * 1024)

	stats := cache.Stats()
	if stats.EntryCount != 0 {
		t.Errorf("expected empty cache, got %d entries", stats.EntryCount)
	}

	loadCount := 0
	idx1, err := cache.Get("surf", func() (*Index, error) {
		loadCount++
		return testIndex(t), nil
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loadCount != 1 {
		t.Errorf("expected loader called once, got %d", loadCount)
	}

	idx2, err := cache.Get("surf", func() (*Index, error) {
		loadCount++
		return testIndex(t), nil
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loadCount != 1 {
		t.Errorf("expected cache hit, loader called %d times", loadCount)
	}
	if idx1 != idx2 {
		t.Error("expected the same cached index instance on hit")
	}
}

func TestIndexCacheClearAndRemove(t *testing.T) {
	cache := NewIndexCache(1024 * 1024)
	if _, err := cache.Get("a", func() (*Index, error) { return testIndex(t), nil }); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cache.Stats().EntryCount != 1 {
		t.Fatalf("expected 1 entry, got %d", cache.Stats().EntryCount)
	}

	cache.Remove("a")
	if cache.Stats().EntryCount != 0 {
		t.Errorf("expected 0 entries after Remove, got %d", cache.Stats().EntryCount)
	}

	if _, err := cache.Get("b", func() (*Index, error) { return testIndex(t), nil }); err != nil {
		t.Fatalf("Get: %v", err)
	}
	cache.Clear()
	if cache.Stats().EntryCount != 0 || cache.Stats().UsedMemory != 0 {
		t.Errorf("expected empty cache after Clear, got %+v", cache.Stats())
	}
}
