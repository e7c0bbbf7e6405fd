//go:build integration

package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

// These tests run the conditional-increment script against a real Redis,
// since its atomicity and TTL behavior live server-side and cannot be
// observed through fakes. Run with:
//
//	go test -tags integration ./internal/store/ -run IncrBelow
//
// REDIS_ADDR overrides the default localhost:6379.

func openTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := Open(ctx, Config{Addr: addr})
	if err != nil {
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testKey(t *testing.T) string {
	return fmt.Sprintf("test:quota:%s:%d", t.Name(), time.Now().UnixNano())
}

func TestIncrBelow_FreshKeyInitializesWithTTL(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	key := testKey(t)
	defer s.client.Del(ctx, key)

	admitted, n, err := s.IncrBelow(ctx, key, 10, time.Hour)
	if err != nil {
		t.Fatalf("IncrBelow: %v", err)
	}
	if !admitted || n != 1 {
		t.Fatalf("fresh key: admitted=%v n=%d, want true/1", admitted, n)
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("fresh counter TTL = %v, want (0, 1h]", ttl)
	}
}

func TestIncrBelow_CountsUpToLimitThenRejects(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	key := testKey(t)
	defer s.client.Del(ctx, key)

	const limit = 3
	for want := int64(1); want <= limit; want++ {
		admitted, n, err := s.IncrBelow(ctx, key, limit, time.Hour)
		if err != nil {
			t.Fatalf("IncrBelow #%d: %v", want, err)
		}
		if !admitted || n != want {
			t.Fatalf("request #%d: admitted=%v n=%d, want true/%d", want, admitted, n, want)
		}
	}

	// At the limit: rejected, and the counter must not move.
	for i := 0; i < 2; i++ {
		admitted, n, err := s.IncrBelow(ctx, key, limit, time.Hour)
		if err != nil {
			t.Fatalf("IncrBelow over limit: %v", err)
		}
		if admitted || n != limit {
			t.Fatalf("over limit: admitted=%v n=%d, want false/%d", admitted, n, limit)
		}
	}
	if cur, ok, err := s.GetInt(ctx, key); err != nil || !ok || cur != limit {
		t.Fatalf("counter after rejections = %d ok=%v err=%v, want %d", cur, ok, err, limit)
	}
}

func TestIncrBelow_TTLAnchoredAtFirstRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	key := testKey(t)
	defer s.client.Del(ctx, key)

	if _, _, err := s.IncrBelow(ctx, key, 10, 2*time.Second); err != nil {
		t.Fatalf("IncrBelow: %v", err)
	}
	first, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	// Subsequent increments must not refresh the window.
	if _, _, err := s.IncrBelow(ctx, key, 10, 2*time.Second); err != nil {
		t.Fatalf("IncrBelow: %v", err)
	}
	second, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if second > first {
		t.Fatalf("TTL extended by increment: first=%v second=%v", first, second)
	}
}

func TestIncrBelow_ExpiredCounterStartsFresh(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	key := testKey(t)
	defer s.client.Del(ctx, key)

	if _, _, err := s.IncrBelow(ctx, key, 1, time.Second); err != nil {
		t.Fatalf("IncrBelow: %v", err)
	}
	if admitted, _, err := s.IncrBelow(ctx, key, 1, time.Second); err != nil || admitted {
		t.Fatalf("second request admitted=%v err=%v, want rejection", admitted, err)
	}

	time.Sleep(1100 * time.Millisecond)

	admitted, n, err := s.IncrBelow(ctx, key, 1, time.Second)
	if err != nil {
		t.Fatalf("IncrBelow after expiry: %v", err)
	}
	if !admitted || n != 1 {
		t.Fatalf("after expiry: admitted=%v n=%d, want true/1", admitted, n)
	}
}
