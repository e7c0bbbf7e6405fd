// Subscription HTTP handlers.
//
// This file exposes REST endpoints for subscription resources:
//   - GET /subscriptions/me        (current subscription + window usage)
//   - PUT /subscriptions/me/tier   (change tier)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
	"github.com/eakarpinar/go-translation-backend/internal/services"
)

//
// DTOs
//

// ChangeTierRequest is the JSON payload for switching subscription tiers.
type ChangeTierRequest struct {
	// Tier is one of: free, basic, professional, enterprise.
	Tier string `json:"tier" binding:"required" example:"professional"`
}

// SubscriptionResponse wraps the subscription record with live usage numbers
// from the quota window.
type SubscriptionResponse struct {
	Subscription *domain.Subscription `json:"subscription"`
	// WindowUsage is the number of admitted requests in the current quota
	// window (from the shared counter, not the persistent bookkeeping count).
	WindowUsage int64 `json:"window_usage"`
	// WindowLimit is the effective admission ceiling.
	WindowLimit int64 `json:"window_limit"`
}

//
// Handlers
//

// GetSubscription godoc
// @ID          getSubscription
// @Summary     Get the current subscription
// @Description Returns the user's subscription (creating a FREE one when absent) together with current-window usage.
// @Tags        Subscriptions
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.SubscriptionResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /subscriptions/me [get]
func (h *Handlers) GetSubscription(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	sub, err := h.subSvc.GetOrCreate(ctx, uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	// Usage read is best effort; a store outage reads as zero.
	var used int64
	if h.usage != nil {
		if n, uerr := h.usage.Usage(ctx, uid); uerr == nil {
			used = n
		}
	}

	ok(c, http.StatusOK, SubscriptionResponse{
		Subscription: sub,
		WindowUsage:  used,
		WindowLimit:  sub.EffectiveLimit(),
	})
}

// ChangeTier godoc
// @ID          changeTier
// @Summary     Change subscription tier
// @Description Switches the subscription to the named tier, updating the request limit immediately.
// @Description The current window's usage carries over; only the ceiling changes.
// @Tags        Subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.ChangeTierRequest  true  "Target tier"
//
// @Success     200  {object}  domain.Subscription
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown tier"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /subscriptions/me/tier [put]
func (h *Handlers) ChangeTier(c *gin.Context) {
	var req ChangeTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "tier required")
		return
	}

	tier := domain.Tier(strings.ToLower(strings.TrimSpace(req.Tier)))
	sub, err := h.subSvc.ChangeTier(c.Request.Context(), userID(c), tier)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTier) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "tier must be one of: free, basic, professional, enterprise")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, sub)
}
