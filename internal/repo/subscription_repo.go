// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Subscription model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
)

// CreateSubscription inserts a new Subscription row for userID with the
// given tier and limit. The one-to-one relationship is enforced by a unique
// index on user_id.
func CreateSubscription(ctx context.Context, db *gorm.DB, userID string, tier domain.Tier, limit int64) (*domain.Subscription, error) {
	sub := &domain.Subscription{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Tier:                 tier,
		IsActive:             true,
		MonthlyRequestsLimit: limit,
		CurrentRequestsCount: 0,
		CreatedAt:            time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// GetSubscriptionByUser fetches the subscription owned by userID, or
// ErrNotFound when the user has none.
func GetSubscriptionByUser(ctx context.Context, db *gorm.DB, userID string) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubscriptionTier rewrites tier and the stored request ceiling in one
// update so the two can never diverge. Returns ErrNotFound when the user has
// no subscription.
func UpdateSubscriptionTier(ctx context.Context, db *gorm.DB, userID string, tier domain.Tier, limit int64) error {
	res := db.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"tier":                   tier,
			"monthly_requests_limit": limit,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementRequestCount bumps current_requests_count by one with a single
// SQL expression, avoiding a read-modify-write race between concurrent
// requests for the same user.
func IncrementRequestCount(ctx context.Context, db *gorm.DB, subscriptionID string) error {
	res := db.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("id = ?", subscriptionID).
		UpdateColumn("current_requests_count", gorm.Expr("current_requests_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ResetRequestCount zeroes current_requests_count; invoked by external
// period-reset tooling, never by the admission path.
func ResetRequestCount(ctx context.Context, db *gorm.DB, userID string) error {
	res := db.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("user_id = ?", userID).
		UpdateColumn("current_requests_count", 0)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
