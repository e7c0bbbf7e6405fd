// Package services defines the business logic for accounts, subscriptions,
// translations, and compliance validation. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Account-related errors.
var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountDisabled is returned when an otherwise valid login targets a
	// deactivated account.
	ErrAccountDisabled = errors.New("account is disabled")
)

// Subscription- and quota-related errors.
var (
	// ErrNoActiveSubscription indicates that the user has a subscription row
	// but it is marked inactive. Requests are refused before any quota or
	// cache work happens.
	ErrNoActiveSubscription = errors.New("subscription is not active")

	// ErrQuotaExceeded is returned when the user's request counter has
	// reached the subscription limit for the current window.
	ErrQuotaExceeded = errors.New("monthly request quota exceeded")

	// ErrInvalidTier is returned when a tier change names an unknown tier.
	ErrInvalidTier = errors.New("unknown subscription tier")

	// ErrCounterUnavailable indicates that the quota counter store could not
	// be reached; no admission verdict was produced and the request must be
	// refused (fail-closed).
	ErrCounterUnavailable = errors.New("quota counter store unavailable")
)

// Translation-related errors.
var (
	// ErrTranslationNotFound indicates that the requested translation does
	// not exist or is not accessible to the current user.
	ErrTranslationNotFound = errors.New("translation not found")

	// ErrEmptyText is returned when a translation request contains no text.
	ErrEmptyText = errors.New("text is empty")

	// ErrTextTooLong is returned when a translation request exceeds the
	// maximum configured length limit.
	ErrTextTooLong = errors.New("text too long")

	// ErrUnsupportedLanguage is returned when either language code is
	// outside the supported pair ("tr", "en") or the two codes are equal.
	ErrUnsupportedLanguage = errors.New("unsupported language pair")

	// ErrProviderFailure wraps upstream translation provider errors so
	// handlers can map them to a 502 without inspecting provider internals.
	ErrProviderFailure = errors.New("translation provider failure")
)

// Compliance-related errors.
var (
	// ErrTemplateNotFound indicates that the requested compliance template
	// does not exist or is inactive.
	ErrTemplateNotFound = errors.New("compliance template not found")

	// ErrEmptyRules is returned when a compliance template is created
	// without any rules.
	ErrEmptyRules = errors.New("rules are empty")
)
