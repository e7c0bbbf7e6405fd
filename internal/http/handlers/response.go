// Package handlers implements the public HTTP API for the translation
// backend.
//
// This file holds the response envelope shared by every endpoint. Errors
// always serialize as ErrorResponse so clients can branch on the stable code
// (quota_exceeded, subscription_inactive, ...) instead of parsing messages,
// and quote the request id when reporting failures.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eakarpinar/go-translation-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by all endpoints. Code is one
// of the errors.go constants; Message is safe to show to end users and never
// carries source text.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	Code      string `json:"code" example:"not_found"`
	Message   string `json:"message" example:"resource not found"`
}

// fail aborts the request with the standard error envelope. Server-side
// failures (5xx) are additionally logged through the request-scoped logger;
// client errors are already visible in the access log line.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")

	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	})
}

// Fail exposes fail to packages outside handlers, e.g. router-level 404 and
// 405 responses.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
