// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements bearer-token authentication. Token verification is
// delegated to a narrow TokenVerifier function so the middleware stays
// decoupled from the account service and its signing scheme.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys under which the authenticated identity is stashed.
const (
	ctxKeyUserID   = "auth.userID"
	ctxKeyUserRole = "auth.role"
)

// TokenVerifier validates an access token and returns the subject user ID and
// role claim. An error means the token is invalid or expired.
type TokenVerifier func(token string) (userID, role string, err error)

// UserID returns the authenticated user ID stored by Auth. The second return
// value indicates presence.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyUserID)
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// UserRole returns the authenticated role stored by Auth, or "" when absent.
func UserRole(c *gin.Context) string {
	v, ok := c.Get(ctxKeyUserRole)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Auth returns a Gin middleware that requires a valid "Authorization: Bearer"
// token on every request it guards. On success the user ID and role are
// stashed in the context for downstream handlers; on failure the request is
// aborted with a compact 401 body.
func Auth(verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if len(raw) <= len(prefix) || !strings.EqualFold(raw[:len(prefix)], prefix) {
			unauthorized(c, "missing bearer token")
			return
		}
		token := strings.TrimSpace(raw[len(prefix):])

		uid, role, err := verify(token)
		if err != nil || uid == "" {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ctxKeyUserID, uid)
		c.Set(ctxKeyUserRole, role)
		c.Next()
	}
}

// RequireRole returns a middleware that rejects authenticated requests whose
// role differs from want. It must run after Auth.
func RequireRole(want string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserRole(c) != want {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "forbidden",
				"message":    "insufficient privileges",
			})
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       "unauthorized",
		"message":    msg,
	})
}
