// Package limiter implements quota admission for metered translation
// requests against the shared counter store.
//
// Window semantics: the counter for a user expires 24 hours after the first
// request that created it. The window is therefore fixed at first write, not
// sliding; a user who exhausts their quota regains it in one step when the
// counter expires.
//
// Atomicity: admission is a single server-side conditional increment
// (create-or-increment-below-limit), so concurrent requests from the same
// user can never push the counter past the configured limit. Rejected calls
// never consume quota.
//
// Failure policy: fail-closed. When the counter store is unreachable the
// limiter returns an error instead of a verdict; callers surface it as a
// temporary service failure rather than silently admitting unmetered traffic.
package limiter

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultWindow is the rolling quota window applied when none is configured.
const DefaultWindow = 24 * time.Hour

// counterKeyPrefix namespaces quota counters in the shared store.
const counterKeyPrefix = "rate_limit:"

// CounterStore is the narrow store surface the limiter depends on.
// *store.Store satisfies it.
type CounterStore interface {
	// IncrBelow atomically creates a fresh counter with TTL, or increments an
	// existing one only while it is below limit. It returns the admission
	// verdict and the counter value after the call.
	IncrBelow(ctx context.Context, key string, limit int64, ttl time.Duration) (bool, int64, error)

	// GetInt reads a counter without modifying it.
	GetInt(ctx context.Context, key string) (int64, bool, error)
}

// QuotaLimiter decides whether a user may perform one more metered action in
// the current window. It is stateless apart from the shared counter store
// and safe for concurrent use.
type QuotaLimiter struct {
	// Store is the shared counter store adapter.
	Store CounterStore
	// Window is the counter lifetime, fixed at first write. Zero or negative
	// values fall back to DefaultWindow.
	Window time.Duration
}

// Allow reports whether userID may perform one more request under limit.
//
// Semantics:
//   - No counter yet: one is created with value 1 and the window TTL; admitted.
//   - Counter below limit: incremented; admitted.
//   - Counter at or above limit: unchanged; rejected.
//
// The returned count is the counter value after the call. An error means the
// store was unreachable and no verdict was produced (fail-closed).
func (l *QuotaLimiter) Allow(ctx context.Context, userID string, limit int64) (bool, int64, error) {
	tr := otel.Tracer("limiter/QuotaLimiter")
	ctx, span := tr.Start(ctx, "Allow",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int64("quota.limit", limit),
		),
	)
	defer span.End()

	window := l.Window
	if window <= 0 {
		window = DefaultWindow
	}

	admitted, count, err := l.Store.IncrBelow(ctx, counterKeyPrefix+userID, limit, window)
	if err != nil {
		return false, 0, err
	}
	span.SetAttributes(
		attribute.Bool("quota.admitted", admitted),
		attribute.Int64("quota.count", count),
	)
	return admitted, count, nil
}

// Usage returns the current counter value for userID without consuming
// quota. A missing counter reads as zero.
func (l *QuotaLimiter) Usage(ctx context.Context, userID string) (int64, error) {
	n, _, err := l.Store.GetInt(ctx, counterKeyPrefix+userID)
	return n, err
}
