// Package store provides the shared counter/cache store adapter backed by
// Redis. It is the single owner of the Redis connection: the quota limiter
// and the translation cache both operate through this adapter so the process
// holds exactly one connection pool for the lifetime of the server.
//
// Connection semantics:
//   - Open dials and pings once at startup; the pool is reused for every
//     subsequent call (no per-call reconnect).
//   - When the configured password is rejected by the server (AUTH error),
//     Open retries once with no credentials. Misconfigured deployments where
//     Redis runs without auth but a password is set in the environment would
//     otherwise hard-fail. Any other ping failure propagates.
//
// Every operation is a network round-trip; the adapter performs no local
// caching of values.
package store

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config carries the Redis connection settings.
type Config struct {
	Addr     string // host:port
	Password string // optional; empty disables AUTH
	DB       int
}

// Store wraps a shared Redis client with the small surface the limiter and
// the translation cache need: integer counters with TTL, an atomic
// conditional increment, and byte blobs with TTL.
type Store struct {
	client *redis.Client
}

// incrBelow atomically increments KEYS[1] only while its value is below
// ARGV[1], initializing a fresh counter with TTL ARGV[2] on first use.
// Returns the new count, or -1 when the counter is at (or past) the limit.
var incrBelow = redis.NewScript(`
local c = redis.call('GET', KEYS[1])
if not c then
  redis.call('SET', KEYS[1], 1, 'EX', ARGV[2])
  return 1
end
if tonumber(c) >= tonumber(ARGV[1]) then
  return -1
end
return redis.call('INCR', KEYS[1])
`)

// Open connects to Redis and verifies the connection with a ping. If the
// ping fails due to an authentication rejection, it retries once without
// credentials before giving up.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		if cfg.Password == "" || !isAuthError(err) {
			_ = client.Close()
			return nil, err
		}
		_ = client.Close()
		client = redis.NewClient(&redis.Options{
			Addr: cfg.Addr,
			DB:   cfg.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return &Store{client: client}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error { return s.client.Close() }

// GetInt reads an integer counter. The second return value is false when the
// key does not exist.
func (s *Store) GetInt(ctx context.Context, key string) (int64, bool, error) {
	n, err := s.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// SetInt writes an integer counter with the given TTL.
func (s *Store) SetInt(ctx context.Context, key string, value int64, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Incr unconditionally increments a counter and returns the new value.
// A missing key is created with value 1 and no TTL, matching Redis INCR.
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	return s.client.Incr(ctx, key).Result()
}

// IncrBelow performs the atomic conditional increment used for quota
// admission: in a single server-side operation it creates a fresh counter
// (value 1, expiring after ttl), or increments an existing one only while it
// is below limit. It returns the admission verdict and the counter value
// after the call (the pre-existing value when rejected).
func (s *Store) IncrBelow(ctx context.Context, key string, limit int64, ttl time.Duration) (bool, int64, error) {
	n, err := incrBelow.Run(ctx, s.client, []string{key}, limit, int64(ttl.Seconds())).Int64()
	if err != nil {
		return false, 0, err
	}
	if n < 0 {
		// Rejected; report the current count for observability.
		cur, _, gerr := s.GetInt(ctx, key)
		if gerr != nil {
			cur = limit
		}
		return false, cur, nil
	}
	return true, n, nil
}

// GetBytes reads a blob. The second return value is false when the key does
// not exist.
func (s *Store) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// SetBytes writes a blob with the given TTL. Rewrites reset the TTL; reads
// never extend it.
func (s *Store) SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// isAuthError reports whether err is a Redis authentication rejection, by
// matching the server reply variants across versions: NOAUTH and WRONGPASS
// prefixes, plus the "ERR Client sent AUTH" / "ERR invalid password" forms
// older servers use. Matching is deliberately narrow so transport errors that
// merely mention auth (a DNS failure for a host named auth-redis, say) never
// trigger the credential-less retry.
func isAuthError(err error) bool {
	msg := strings.ToUpper(err.Error())
	return strings.HasPrefix(msg, "NOAUTH") ||
		strings.HasPrefix(msg, "WRONGPASS") ||
		strings.HasPrefix(msg, "ERR CLIENT SENT AUTH") ||
		strings.HasPrefix(msg, "ERR INVALID PASSWORD")
}
