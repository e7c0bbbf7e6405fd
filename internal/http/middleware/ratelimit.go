// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the in-process edge limiter that sits in front of the
// Redis-backed monthly quota window. The quota limiter meters billable
// translation requests per subscription; this one only absorbs bursts and
// abusive clients before they reach the store or the provider. It is
// process-local by design: global, billable limits live in internal/limiter.
//
//   - Per-identity token buckets (golang.org/x/time/rate)
//   - Identity is the authenticated user when present, client IP otherwise
//   - Idle buckets are swept opportunistically to bound memory
//   - Idempotent replays bypass the limiter (see IdempotencyValidator)
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// keyFunc maps a request to the identity owning its token bucket.
type keyFunc func(*gin.Context) string

// KeyByUserOrIP keys buckets by the authenticated user when the auth
// middleware has run, falling back to the client IP for anonymous routes
// (register, login, health). Prefixes keep the two namespaces from
// colliding.
func KeyByUserOrIP() keyFunc {
	return func(c *gin.Context) string {
		if uid, ok := UserID(c); ok && uid != "" {
			return "user:" + uid
		}
		return "ip:" + c.ClientIP()
	}
}

// bucket pairs a limiter with its last-touch time for idle eviction.
type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per identity. Buckets are created on
// demand and evicted after bucketIdleTTL of inactivity during periodic sweeps,
// so a scan of the API surface cannot grow the map without bound.
//
// Safe for concurrent use.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn keyFunc

	mu      sync.Mutex
	buckets map[string]*bucket
	sweepN  uint
}

const (
	// bucketIdleTTL is how long an identity may stay quiet before its bucket
	// is dropped. Long enough to span a slow translation session.
	bucketIdleTTL = 15 * time.Minute
	// sweepEvery triggers an eviction pass after this many bucket lookups.
	sweepEvery = 4096
)

// NewRateLimiter builds a limiter replenishing rps tokens per second with the
// given burst ceiling. A burst below 1 is coerced to 1 so a configured
// limiter always admits at least single requests.
func NewRateLimiter(rps float64, burst int, keyFn keyFunc) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		keyFn:   keyFn,
		buckets: make(map[string]*bucket),
	}
}

// bucketFor returns the bucket owning key, creating it when absent. The idle
// sweep runs before the lookup so a stale bucket for this very key is evicted
// rather than refreshed.
func (rl *RateLimiter) bucketFor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweepN++
	if rl.sweepN >= sweepEvery {
		for k, b := range rl.buckets {
			if now.Sub(b.lastSeen) >= bucketIdleTTL {
				delete(rl.buckets, k)
			}
		}
		rl.sweepN = 0
	}

	if b, ok := rl.buckets[key]; ok {
		b.lastSeen = now
		return b.lim
	}
	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.buckets[key] = &bucket{lim: lim, lastSeen: now}
	return lim
}

// IsRateBypass reports whether IdempotencyValidator marked this request as a
// replay of an already-completed translation. Replays are served from the
// stored record and must not spend tokens.
func IsRateBypass(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyRateBypass)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Handler enforces the per-identity bucket. Rejections are 429 with the
// standard error envelope and a short Retry-After; unlike a quota rejection
// (which is final for the window) the client can simply slow down, and the
// message says so.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsRateBypass(c) {
			c.Next()
			return
		}

		if rl.bucketFor(rl.keyFn(c)).Allow() {
			c.Next()
			return
		}

		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get("X-Request-ID"),
			"code":       "rate_limited",
			"message":    "request rate exceeded, slow down and retry",
		})
	}
}
