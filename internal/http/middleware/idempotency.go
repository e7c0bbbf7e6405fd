// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the Idempotency-Key handling that lets clients retry
// POST /translations without being charged twice against their monthly quota
// or triggering a second provider call. The middleware validates and stashes
// the key and flags detected replays; serving the stored response stays in
// the handler, which owns the persisted record.
package middleware

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey carries the client-chosen dedup key for unsafe
// operations. Clients reuse the same value when retrying one semantic
// request.
const HeaderIdempotencyKey = "Idempotency-Key"

const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemReplay = "idem.replay" // bool: a stored response exists
	ctxKeyRateBypass = "rate.bypass" // bool: skip the edge rate limiter
)

// defaultKeyMaxLen bounds accepted keys; anything longer is a client bug, not
// a retry token.
const defaultKeyMaxLen = 200

// defaultKeyPattern accepts RFC 7230 token characters plus the separators
// clients commonly embed in keys (order-8412:retry-2).
var defaultKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)

// GetIdempotencyKey returns the validated key stashed by
// IdempotencyValidator. Handlers should use this instead of re-reading the
// header.
func GetIdempotencyKey(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyIdemKey)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// IsReplay reports whether this request duplicates a previously completed
// one. Handlers serve the persisted response instead of re-running the
// pipeline.
func IsReplay(c *gin.Context) bool {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IdempotencyOptions tunes header validation. TTL is not enforced here; the
// lookup decides whether a stored record is still replayable.
type IdempotencyOptions struct {
	// MaxLen caps the accepted key length; <= 0 uses defaultKeyMaxLen.
	MaxLen int
	// Pattern restricts allowed characters; nil uses defaultKeyPattern.
	Pattern *regexp.Regexp
}

// IdempotencyLookup reports whether a completed, still-valid response exists
// for (userID, key) at the given time. Lookup failures must not block the
// request; return an error and the middleware treats it as no-replay.
type IdempotencyLookup func(ctx context.Context, userID, key string, now time.Time) (exists bool, err error)

// IdempotencyValidator validates the Idempotency-Key header when present,
// stashes it in the context, and consults the lookup for a prior completed
// request. On a detected replay it sets the replay flag and the rate-limiter
// bypass, so retries of already-paid work are never throttled. Requests
// without the header pass through untouched; malformed keys get a 400.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = defaultKeyMaxLen
	}
	pat := opts.Pattern
	if pat == nil {
		pat = defaultKeyPattern
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    "bad_idempotency_key",
				"message": "invalid Idempotency-Key",
			})
			return
		}

		c.Set(ctxKeyIdemKey, key)

		if lookup != nil {
			uid, _ := UserID(c)
			if exists, _ := lookup(c.Request.Context(), uid, key, time.Now().UTC()); exists {
				c.Set(ctxKeyIdemReplay, true)
				c.Set(ctxKeyRateBypass, true)
			}
		}

		c.Next()
	}
}
