package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		k1 := CacheKey("search", "golang tutorials")
		k2 := CacheKey("search", "golang tutorials")
		if k1 != k2 {
			t.Errorf("CacheKey not deterministic: %q != %q", k1, k2)
		}
	})

	t.Run("different inputs differ", func(t *testing.T) {
		k1 := CacheKey("search", "golang")
		k2 := CacheKey("search", "python")
		if k1 == k2 {
			t.Errorf("different inputs produced same key: %q", k1)
		}
	})

	t.Run("has prefix", func(t *testing.T) {
		if k := CacheKey("test"); !strings.HasPrefix(k, "nta:") {
			t.Errorf("expected nta: prefix, got %q", k)
		}
	})
}

func TestCacheGetSetBytes(t *testing.T) {
	InitCache("", time.Minute, 100, 5*time.Minute)

	ctx := context.Background()
	key := CacheKey("test", "round-trip")

	if _, ok := CacheGetBytes(ctx, key); ok {
		t.Error("expected cache miss on empty cache")
	}

	CacheSetBytes(ctx, key, []byte("hello"))

	got, ok := CacheGetBytes(ctx, key)
	if !ok {
		t.Fatal("expected cache hit after set")
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestCacheJSONRoundTrip(t *testing.T) {
	InitCache("", time.Minute, 100, 5*time.Minute)

	type payload struct {
		Query string `json:"query"`
		Total int    `json:"total"`
	}

	ctx := context.Background()
	key := CacheKey("test", "json")

	CacheStoreJSON(ctx, key, payload{Query: "cats", Total: 7})

	got, ok := CacheLoadJSON[payload](ctx, key)
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Query != "cats" || got.Total != 7 {
		t.Errorf("got %+v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	InitCache("", 10*time.Millisecond, 100, 5*time.Minute)

	ctx := context.Background()
	key := CacheKey("test", "expiry")
	CacheSetBytes(ctx, key, []byte("gone soon"))

	time.Sleep(20 * time.Millisecond)
	if _, ok := CacheGetBytes(ctx, key); ok {
		t.Error("expected miss after TTL")
	}
}

func TestCacheEviction(t *testing.T) {
	InitCache("", time.Minute, 5, 5*time.Minute)

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		CacheSetBytes(ctx, CacheKey("evict", fmt.Sprint(i)), []byte("x"))
	}

	count := 0
	resultCache.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count > 5 {
		t.Errorf("L1 holds %d entries, max is 5", count)
	}
}

func TestCacheNilSafe(t *testing.T) {
	resultCache = nil

	ctx := context.Background()
	CacheSetBytes(ctx, "k", []byte("v"))
	if _, ok := CacheGetBytes(ctx, "k"); ok {
		t.Error("uninitialized cache must miss")
	}
}
