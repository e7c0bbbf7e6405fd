package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Translation is the persisted result of a successful pipeline run. Records
// are immutable once created except for deletion by their owner; reads and
// deletes are always scoped by UserID so cross-user access surfaces as
// "not found" rather than "forbidden".
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - UserID: identifier of the owning user; indexed for listing.
//   - SourceText / TranslatedText: the full texts.
//   - SourceLang / TargetLang: ISO 639-1 codes, currently "tr" or "en".
//   - Context: snapshot of the request's context map (cultural hints,
//     compliance rules) as submitted.
//   - Metadata: provider bookkeeping such as the model used and whether the
//     result was served from cache.
type Translation struct {
	ID             string            `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID         string            `json:"user_id"     gorm:"type:char(36);not null;index:idx_user_translations"`
	SourceText     string            `json:"source_text"     gorm:"type:text;not null"`
	TranslatedText string            `json:"translated_text" gorm:"type:text;not null"`
	SourceLang     string            `json:"source_lang" gorm:"type:varchar(2);not null"`
	TargetLang     string            `json:"target_lang" gorm:"type:varchar(2);not null"`
	Context        datatypes.JSONMap `json:"context,omitempty"`
	Metadata       datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at" gorm:"index:idx_user_translations,priority:2"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `json:"-" gorm:"index"`
}

// TableName returns the database table name for Translation.
func (Translation) TableName() string { return "translations" }

// ComplianceCheck records the outcome of an asynchronous compliance
// validation against a translation. Checks are written by the background
// worker after the translation response has already been sent; the API
// exposes them on a separate read path.
type ComplianceCheck struct {
	ID               string            `json:"id"             gorm:"type:char(36);primaryKey"`
	TranslationID    string            `json:"translation_id" gorm:"type:char(36);not null;index"`
	RuleSet          datatypes.JSONMap `json:"rule_set"       gorm:"not null"`
	IsCompliant      bool              `json:"is_compliant"   gorm:"not null;default:false"`
	ValidationResult string            `json:"validation_result,omitempty" gorm:"type:text"`
	Suggestions      datatypes.JSONMap `json:"suggestions,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	DeletedAt        gorm.DeletedAt    `json:"-" gorm:"index"`

	// Translation is the checked record. Checks are cascade-deleted with it.
	Translation Translation `json:"-" gorm:"foreignKey:TranslationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ComplianceCheck.
func (ComplianceCheck) TableName() string { return "compliance_checks" }

// ComplianceTemplate is a reusable, named set of compliance rules (e.g. a
// GDPR or KVKK rule pack) that clients can reference when requesting
// translations with compliance validation.
type ComplianceTemplate struct {
	ID          string            `json:"id"          gorm:"type:char(36);primaryKey"`
	Name        string            `json:"name"        gorm:"type:varchar(255);not null"`
	Description string            `json:"description,omitempty" gorm:"type:text"`
	Rules       datatypes.JSONMap `json:"rules"       gorm:"not null"`
	Category    string            `json:"category,omitempty" gorm:"type:varchar(100);index"`
	Version     string            `json:"version,omitempty"  gorm:"type:varchar(50)"`
	IsActive    bool              `json:"is_active"   gorm:"not null;default:true"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `json:"-" gorm:"index"`
}

// TableName returns the database table name for ComplianceTemplate.
func (ComplianceTemplate) TableName() string { return "compliance_templates" }
