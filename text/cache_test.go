package text

import (
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	cache := NewCache[rune, float64](0)

	if _, ok := cache.Get('a'); ok {
		t.Error("Get on empty cache returned ok")
	}

	cache.Set('a', 7)
	if v, ok := cache.Get('a'); !ok || v != 7 {
		t.Errorf("Get('a') = (%v, %v), want (7, true)", v, ok)
	}

	cache.Set('a', 9)
	if v, _ := cache.Get('a'); v != 9 {
		t.Errorf("Get('a') after overwrite = %v, want 9", v)
	}
}

func TestCacheGetOrCreateCallsOnce(t *testing.T) {
	cache := NewCache[rune, Glyph](0)

	calls := 0
	create := func() Glyph {
		calls++
		return Glyph{Rune: 'x', HasRune: true, Width: 7, Height: 13}
	}

	for range 3 {
		g := cache.GetOrCreate('x', create)
		if g.Width != 7 {
			t.Fatalf("GetOrCreate width = %v, want 7", g.Width)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCache[int, int](4)

	for i := range 4 {
		cache.Set(i, i)
	}
	// Refresh 0 so that 1 and 2 become the oldest.
	cache.Get(0)
	cache.Set(4, 4)

	if got := cache.Len(); got != 3 {
		t.Fatalf("Len() after eviction = %d, want 3", got)
	}
	for _, key := range []int{0, 3, 4} {
		if _, ok := cache.Get(key); !ok {
			t.Errorf("key %d evicted, want kept", key)
		}
	}
	for _, key := range []int{1, 2} {
		if _, ok := cache.Get(key); ok {
			t.Errorf("key %d kept, want evicted", key)
		}
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache[string, int](0)
	cache.Set("a", 1)
	cache.Set("b", 2)

	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cache.Len())
	}
}

func TestCacheConcurrentGetOrCreate(t *testing.T) {
	cache := NewCache[int, int](16)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				key := (g + i) % 32
				if v := cache.GetOrCreate(key, func() int { return key * 2 }); v != key*2 {
					t.Errorf("GetOrCreate(%d) = %d, want %d", key, v, key*2)
				}
			}
		}()
	}
	wg.Wait()
}
