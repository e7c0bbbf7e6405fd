// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RedactingLogger, the access logger used in front of
// the translation API. Request and response bodies are never logged: payloads
// carry customer source text, which must not reach the log pipeline. What
// does get logged (query strings, headers) is scrubbed first:
//
//   - emails, phone numbers, and UUIDs are replaced with typed markers
//   - Authorization, Cookie, Set-Cookie, X-API-Key, and Idempotency-Key are
//     fully masked (idempotency keys are client-chosen and routinely embed
//     order or user identifiers), plus any headers named in RedactOptions
//
// Scrubbing reduces, but cannot eliminate, the risk of identifiers leaking
// through query strings; clients should keep PII out of URLs regardless.
package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Scrub patterns, compiled once. UUIDs must be replaced before phone numbers
// so the loose phone pattern cannot match digit runs inside a UUID.
var (
	scrubUUID  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	scrubEmail = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	// Digits-only so hex characters never match. Covers "+90 212 555 1212",
	// "(212) 555-1212" and similar groupings.
	scrubPhone = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// maskedByDefault lists headers whose values are always fully replaced,
// lowercase for case-insensitive matching.
var maskedByDefault = []string{
	"authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
	"idempotency-key",
}

// RedactOptions configures extra scrub behavior. MaskHeaders names additional
// headers to mask fully; matching is case-insensitive and merged with the
// built-in set.
type RedactOptions struct {
	MaskHeaders []string
}

// scrubValue replaces identifying substrings with typed markers, loosest
// pattern last.
func scrubValue(s string) string {
	if s == "" {
		return s
	}
	s = scrubUUID.ReplaceAllString(s, "[REDACTED:id]")
	s = scrubEmail.ReplaceAllString(s, "[REDACTED:email]")
	s = scrubPhone.ReplaceAllString(s, "[REDACTED:phone]")
	return s
}

// RedactingLogger returns a Gin middleware that emits one structured log line
// per request with scrubbed metadata: method, route path, query, status,
// response size, latency, and headers. Severity follows the outcome (info,
// warn for 4xx, error for 5xx).
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	masked := make(map[string]struct{}, len(maskedByDefault)+len(opts.MaskHeaders))
	for _, h := range maskedByDefault {
		masked[h] = struct{}{}
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			masked[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		safeQuery := scrubValue(c.Request.URL.RawQuery)

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			if _, ok := masked[strings.ToLower(k)]; ok {
				safeHeaders[k] = "[REDACTED]"
				continue
			}
			safeHeaders[k] = scrubValue(strings.Join(vv, ", "))
		}

		c.Next()

		status := c.Writer.Status()
		reqID := c.Writer.Header().Get("X-Request-ID")
		if reqID == "" {
			reqID = c.GetHeader("X-Request-ID")
		}

		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}

		ev.
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", safeQuery).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}
