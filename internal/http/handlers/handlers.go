// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the Handlers aggregate, the service contracts it depends
// on, and small shared helpers (identity extraction, pagination clamping).
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
	"github.com/eakarpinar/go-translation-backend/internal/http/middleware"
	"github.com/eakarpinar/go-translation-backend/internal/provider"
	"github.com/eakarpinar/go-translation-backend/internal/services"
	"github.com/eakarpinar/go-translation-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// AccountService defines registration and authentication operations consumed
// by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AccountService interface {
	// Register creates a new account.
	Register(ctx context.Context, email, password, fullName, companyName string) (*domain.User, error)
	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// GetProfile fetches the authenticated user's record.
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}

// TranslationService defines the translation pipeline operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type TranslationService interface {
	// Translate runs the full request pipeline and returns the persisted record.
	Translate(ctx context.Context, userID string, in services.TranslateInput) (*domain.Translation, error)
	// Get fetches one translation owned by userID.
	Get(ctx context.Context, userID, id string) (*domain.Translation, error)
	// ListPage returns a page of the user's translations and the total count.
	ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.Translation, int64, error)
	// Delete removes a translation owned by userID.
	Delete(ctx context.Context, userID, id string) error
	// ComplianceChecks returns recorded validation outcomes for a translation.
	ComplianceChecks(ctx context.Context, userID, id string) ([]domain.ComplianceCheck, error)
}

// SubscriptionService defines subscription lifecycle operations.
type SubscriptionService interface {
	// GetOrCreate returns the user's subscription, creating a FREE one when absent.
	GetOrCreate(ctx context.Context, userID string) (*domain.Subscription, error)
	// ChangeTier switches the subscription tier and rewrites the stored limit.
	ChangeTier(ctx context.Context, userID string, tier domain.Tier) (*domain.Subscription, error)
}

// ComplianceService defines rule-template management and synchronous validation.
type ComplianceService interface {
	CreateTemplate(ctx context.Context, name, description string, rules map[string]any, category, version string) (*domain.ComplianceTemplate, error)
	GetTemplate(ctx context.Context, id string) (*domain.ComplianceTemplate, error)
	ListTemplates(ctx context.Context, category string) ([]domain.ComplianceTemplate, error)
	ResolveRules(ctx context.Context, templateID string) (map[string]any, error)
	Validate(ctx context.Context, text, lang string, rules map[string]any) (provider.ComplianceResult, error)
}

// UsageReader reads the current quota counter without consuming it.
// *limiter.QuotaLimiter satisfies it.
type UsageReader interface {
	Usage(ctx context.Context, userID string) (int64, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for accounts, translations, subscriptions,
// and compliance templates. It depends on abstract service interfaces to keep
// transport concerns separate from business logic.
type Handlers struct {
	acctSvc  AccountService
	transSvc TranslationService
	subSvc   SubscriptionService
	compSvc  ComplianceService
	usage    UsageReader
}

// New constructs and returns a Handlers instance bound to the given services.
func New(acctSvc AccountService, transSvc TranslationService, subSvc SubscriptionService, compSvc ComplianceService, usage UsageReader) *Handlers {
	return &Handlers{
		acctSvc:  acctSvc,
		transSvc: transSvc,
		subSvc:   subSvc,
		compSvc:  compSvc,
		usage:    usage,
	}
}

// userID extracts the authenticated user id stashed by the auth middleware.
// Routes behind Auth always have it; an empty string means the middleware was
// not installed (tests exercising handlers directly set it explicitly).
func userID(c *gin.Context) string {
	uid, _ := middleware.UserID(c)
	return uid
}

//
// Shared DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.ClampInt(utils.AtoiDefault(c.Query("page_size"), defaultPageSize), 1, maxPageSize)
	return
}
