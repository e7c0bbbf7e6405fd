// Package domain defines the persistence models for users, subscriptions,
// translations, and compliance data. These types are mapped with GORM and
// form the core data layer of the translation backend.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Role distinguishes administrative accounts from regular users.
type Role string

// Supported account roles.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents an authenticated principal of the system. Each user owns
// zero or more translations and at most one subscription (created lazily with
// the FREE tier on first authenticated access when absent).
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Email: unique login identifier.
//   - PasswordHash: bcrypt hash of the password; never serialized.
//   - FullName / CompanyName: optional profile data.
//   - Role: "admin" or "user" (enforced by DB constraint).
//   - IsActive: account-level gate, independent of the subscription gate.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker.
type User struct {
	ID           string         `json:"id"           gorm:"type:char(36);primaryKey"`
	Email        string         `json:"email"        gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string         `json:"-"            gorm:"type:varchar(255);not null"`
	FullName     string         `json:"full_name,omitempty"    gorm:"type:varchar(255)"`
	CompanyName  string         `json:"company_name,omitempty" gorm:"type:varchar(255)"`
	Role         Role           `json:"role"         gorm:"type:varchar(16);not null;default:'user';check:role IN ('admin','user')"`
	IsActive     bool           `json:"is_active"    gorm:"not null;default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"            gorm:"index"`

	// Subscription is the one-to-one quota record for this user.
	Subscription *Subscription `json:"subscription,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }
