// Package services – SubscriptionService
//
// This file implements SubscriptionService, which owns the tier policy and
// the lifecycle of subscription records. Subscriptions are created lazily:
// a user who has none receives a FREE-tier subscription on first access, so
// callers can always rely on one existing.
//
// The stored MonthlyRequestsLimit is authoritative for admission. Changing
// the tier rewrites both fields in one update so the stored limit can never
// lag the tier.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
	"github.com/eakarpinar/go-translation-backend/internal/repo"
)

// tierLimits maps each tier to its monthly request ceiling.
var tierLimits = map[domain.Tier]int64{
	domain.TierFree:         100,
	domain.TierBasic:        1_000,
	domain.TierProfessional: 10_000,
	domain.TierEnterprise:   100_000,
}

// TierLimit returns the monthly request ceiling for a tier, or false when the
// tier is unknown.
func TierLimit(t domain.Tier) (int64, bool) {
	n, ok := tierLimits[t]
	return n, ok
}

// SubscriptionService manages subscription records and the tier policy.
type SubscriptionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewSubscriptionService constructs a SubscriptionService.
func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{DB: db}
}

// GetOrCreate returns the user's subscription, creating a FREE-tier one when
// none exists yet. A concurrent create losing the unique-index race falls
// back to reading the winner's row.
func (s *SubscriptionService) GetOrCreate(ctx context.Context, userID string) (*domain.Subscription, error) {
	tr := otel.Tracer("services/SubscriptionService")
	ctx, span := tr.Start(ctx, "GetOrCreate",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	sub, err := repo.GetSubscriptionByUser(ctx, s.DB, userID)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub, err = repo.CreateSubscription(ctx, s.DB, userID, domain.TierFree, tierLimits[domain.TierFree])
	if err != nil {
		// Lost the race: another request created it first.
		if existing, gerr := repo.GetSubscriptionByUser(ctx, s.DB, userID); gerr == nil {
			return existing, nil
		}
		return nil, err
	}
	span.SetAttributes(attribute.Bool("subscription.created", true))
	return sub, nil
}

// ChangeTier switches the user's subscription to the named tier, rewriting
// the stored request limit to the tier's ceiling in the same update. The
// usage counter in the shared store is untouched: a mid-window upgrade takes
// effect immediately against the already-consumed count.
func (s *SubscriptionService) ChangeTier(ctx context.Context, userID string, tier domain.Tier) (*domain.Subscription, error) {
	tr := otel.Tracer("services/SubscriptionService")
	ctx, span := tr.Start(ctx, "ChangeTier",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("subscription.tier", string(tier)),
		),
	)
	defer span.End()

	limit, ok := tierLimits[tier]
	if !ok {
		return nil, ErrInvalidTier
	}

	// Ensure a subscription exists before updating it.
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	if err := repo.UpdateSubscriptionTier(ctx, s.DB, userID, tier, limit); err != nil {
		return nil, err
	}
	return repo.GetSubscriptionByUser(ctx, s.DB, userID)
}

// RecordUsage bumps the subscription's persistent usage counter. The counter
// is bookkeeping only; admission is decided by the shared store counter.
func (s *SubscriptionService) RecordUsage(ctx context.Context, subscriptionID string) error {
	return repo.IncrementRequestCount(ctx, s.DB, subscriptionID)
}
