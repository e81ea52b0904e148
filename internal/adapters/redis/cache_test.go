package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "travelbook/internal/adapters/redis"
	"travelbook/internal/domain"
)

func newTestCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	in := domain.City{ID: 7, Name: "Lisbon", Featured: true}
	if err := c.Set(ctx, "city:7", in, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out domain.City
	ok, err := c.Get(ctx, "city:7", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if out.ID != in.ID || out.Name != in.Name || out.Featured != in.Featured {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var out domain.City
	ok, err := c.Get(context.Background(), "absent", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", 30); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var out string
	ok, err := c.Get(ctx, "k", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected expiry after ttl")
	}
}

func TestCacheDel(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", 1, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	var out int
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatal("expected key gone after Del")
	}
}
