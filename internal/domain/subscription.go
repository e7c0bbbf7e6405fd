package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Tier is the subscription level determining the monthly request ceiling.
// Tiers are ordered by increasing quota.
type Tier string

// Supported subscription tiers.
const (
	TierFree         Tier = "free"
	TierBasic        Tier = "basic"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierBasic, TierProfessional, TierEnterprise:
		return true
	}
	return false
}

// DefaultMonthlyLimit is the request ceiling applied when a subscription
// carries no explicit limit (zero value).
const DefaultMonthlyLimit = 100

// Subscription is the quota record owned by exactly one user. The stored
// MonthlyRequestsLimit is authoritative for admission; it is kept in sync
// with the tier on every tier change.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - UserID: foreign key to the owning user (unique, one-to-one).
//   - Tier: subscription level; defaults to "free".
//   - IsActive: boolean gate independent of tier; inactive subscriptions
//     are refused service before any quota accounting happens.
//   - MonthlyRequestsLimit: request ceiling; 0 means "use DefaultMonthlyLimit".
//   - CurrentRequestsCount: metered usage within the current period,
//     monotonically non-decreasing until reset externally.
//   - PaymentMethod / Metadata: billing bookkeeping, opaque to admission.
type Subscription struct {
	ID                   string            `json:"id"       gorm:"type:char(36);primaryKey"`
	UserID               string            `json:"user_id"  gorm:"type:char(36);not null;uniqueIndex"`
	Tier                 Tier              `json:"tier"     gorm:"type:varchar(16);not null;default:'free';check:tier IN ('free','basic','professional','enterprise')"`
	IsActive             bool              `json:"is_active" gorm:"not null;default:true"`
	MonthlyRequestsLimit int64             `json:"monthly_requests_limit" gorm:"not null;default:0"`
	CurrentRequestsCount int64             `json:"current_requests_count" gorm:"not null;default:0"`
	PaymentMethod        string            `json:"payment_method,omitempty" gorm:"type:varchar(50)"`
	Metadata             datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
	DeletedAt            gorm.DeletedAt    `json:"-" gorm:"index"`
}

// TableName returns the database table name for Subscription.
func (Subscription) TableName() string { return "subscriptions" }

// EffectiveLimit returns the admission ceiling for this subscription:
// the stored limit, or DefaultMonthlyLimit when no limit is set.
func (s *Subscription) EffectiveLimit() int64 {
	if s.MonthlyRequestsLimit > 0 {
		return s.MonthlyRequestsLimit
	}
	return DefaultMonthlyLimit
}
