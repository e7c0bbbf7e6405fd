// Package cache implements the content-addressed translation cache.
//
// Entries are keyed by a deterministic digest over the exact source text,
// both language codes, and a canonical serialization of the context map, so
// identical requests from different users share one entry. The cache is a
// pure performance optimization: a miss is never an error, and a hit is
// indistinguishable in shape from a freshly computed result.
//
// Lifetime is pure TTL: 24 hours from write, refreshed only by rewrite,
// never extended by read.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eakarpinar/go-translation-backend/internal/provider"
)

// DefaultTTL is the entry lifetime applied when none is configured.
const DefaultTTL = 24 * time.Hour

// keyPrefix namespaces translation entries in the shared store.
const keyPrefix = "translation:"

// BlobStore is the narrow store surface the cache depends on.
// *store.Store satisfies it.
type BlobStore interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TranslationCache stores provider results in the shared counter store under
// content-addressed keys. It is safe for concurrent use.
type TranslationCache struct {
	// Blobs is the shared store adapter (same connection as the limiter).
	Blobs BlobStore
	// TTL is the entry lifetime; zero or negative falls back to DefaultTTL.
	TTL time.Duration
}

// Key derives the cache key for a request: a sha256 digest over
// "text:source:target:context" where context is serialized canonically.
// encoding/json marshals map keys in sorted order, so two context maps with
// the same entries in different insertion order hash identically.
func Key(req provider.Request) (string, error) {
	ctxMap := req.Context
	if ctxMap == nil {
		ctxMap = map[string]any{}
	}
	ctxJSON, err := json.Marshal(ctxMap)
	if err != nil {
		return "", fmt.Errorf("canonicalize context: %w", err)
	}
	sum := sha256.Sum256([]byte(
		req.Text + ":" + req.SourceLang + ":" + req.TargetLang + ":" + string(ctxJSON),
	))
	return keyPrefix + hex.EncodeToString(sum[:]), nil
}

// Lookup returns the cached result for req when present. The second return
// value reports a hit; a miss is not an error.
func (c *TranslationCache) Lookup(ctx context.Context, req provider.Request) (provider.Result, bool, error) {
	key, err := Key(req)
	if err != nil {
		return provider.Result{}, false, err
	}
	raw, ok, err := c.Blobs.GetBytes(ctx, key)
	if err != nil || !ok {
		return provider.Result{}, false, err
	}
	var res provider.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		// A corrupt entry is treated as a miss; the rewrite will replace it.
		return provider.Result{}, false, nil
	}
	return res, true, nil
}

// Store writes the result for req with the configured TTL.
func (c *TranslationCache) Store(ctx context.Context, req provider.Request, res provider.Result) error {
	key, err := Key(req)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return c.Blobs.SetBytes(ctx, key, raw, ttl)
}
