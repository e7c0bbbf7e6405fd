package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestGetIdempotencyKey_And_IsReplay_Defaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if k, ok := GetIdempotencyKey(c); ok || k != "" {
		t.Fatalf("expected no key, got %q ok=%v", k, ok)
	}
	if IsReplay(c) {
		t.Fatalf("expected IsReplay=false on fresh context")
	}

	c.Set(ctxKeyIdemKey, "abc")
	c.Set(ctxKeyIdemReplay, true)
	if k, ok := GetIdempotencyKey(c); !ok || k != "abc" {
		t.Fatalf("expected key abc, got %q ok=%v", k, ok)
	}
	if !IsReplay(c) {
		t.Fatalf("expected IsReplay=true after set")
	}
}

func TestIdempotencyValidator_NoHeader_NoLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	called := false
	r.Use(IdempotencyValidator(IdempotencyOptions{}, func(context.Context, string, string, time.Time) (bool, error) {
		called = true
		return true, nil
	}))
	r.POST("/translations", func(c *gin.Context) {
		if _, ok := GetIdempotencyKey(c); ok {
			t.Errorf("no key should be stashed without header")
		}
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/translations", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	if called {
		t.Fatalf("lookup must not run when header absent")
	}
}

func TestIdempotencyValidator_RejectsInvalidKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		opts IdempotencyOptions
		key  string
	}{
		{"too long (default max)", IdempotencyOptions{}, strings.Repeat("a", 201)},
		{"too long (custom max)", IdempotencyOptions{MaxLen: 5}, "abcdef"},
		{"bad characters (default pattern)", IdempotencyOptions{}, "no spaces allowed"},
		{"bad characters (custom pattern)", IdempotencyOptions{Pattern: regexp.MustCompile(`^[0-9]+$`)}, "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(IdempotencyValidator(tc.opts, nil))
			r.POST("/translations", func(c *gin.Context) { c.Status(http.StatusCreated) })

			req := httptest.NewRequest(http.MethodPost, "/translations", nil)
			req.Header.Set(HeaderIdempotencyKey, tc.key)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if !strings.Contains(w.Body.String(), "bad_idempotency_key") {
				t.Fatalf("body = %s", w.Body.String())
			}
		})
	}
}

func TestIdempotencyValidator_ValidKey_NilLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyValidator(IdempotencyOptions{}, nil))
	r.POST("/translations", func(c *gin.Context) {
		k, ok := GetIdempotencyKey(c)
		if !ok || k != "req-1.2~3:x" {
			t.Errorf("key = %q ok=%v", k, ok)
		}
		if IsReplay(c) {
			t.Errorf("replay must be false without a lookup")
		}
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/translations", nil)
	req.Header.Set(HeaderIdempotencyKey, "req-1.2~3:x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestIdempotencyValidator_LookupMissAndHit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotUser, gotKey string
	exists := false
	lookup := func(_ context.Context, userID, key string, now time.Time) (bool, error) {
		gotUser, gotKey = userID, key
		if now.IsZero() {
			t.Errorf("lookup must receive a non-zero timestamp")
		}
		return exists, nil
	}

	r := gin.New()
	// Simulate the auth middleware having resolved the caller.
	r.Use(func(c *gin.Context) {
		c.Set(ctxKeyUserID, "u9")
		c.Next()
	})
	r.Use(IdempotencyValidator(IdempotencyOptions{}, lookup))
	r.POST("/translations", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"replay": IsReplay(c)})
	})

	// Miss: key stashed, no replay flag.
	req := httptest.NewRequest(http.MethodPost, "/translations", nil)
	req.Header.Set(HeaderIdempotencyKey, "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"replay":false`) {
		t.Fatalf("miss: status=%d body=%s", w.Code, w.Body.String())
	}
	if gotUser != "u9" || gotKey != "key-1" {
		t.Fatalf("lookup args = (%q, %q)", gotUser, gotKey)
	}

	// Hit: replay flag set.
	exists = true
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"replay":true`) {
		t.Fatalf("hit: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestIdempotencyValidator_LookupErrorDoesNotBlock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyValidator(IdempotencyOptions{}, func(context.Context, string, string, time.Time) (bool, error) {
		return false, context.DeadlineExceeded
	}))
	r.POST("/translations", func(c *gin.Context) {
		if IsReplay(c) {
			t.Errorf("lookup error must not mark replay")
		}
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/translations", nil)
	req.Header.Set(HeaderIdempotencyKey, "key-err")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 despite lookup failure", w.Code)
	}
}

func TestUserID_EmptyWhenUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got, ok := UserID(c); ok || got != "" {
		t.Fatalf("UserID = %q ok=%v, want empty", got, ok)
	}
	c.Set(ctxKeyUserID, "u1")
	if got, ok := UserID(c); !ok || got != "u1" {
		t.Fatalf("UserID = %q ok=%v, want u1", got, ok)
	}
}
