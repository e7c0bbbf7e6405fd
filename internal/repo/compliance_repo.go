// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ComplianceCheck and ComplianceTemplate models.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
)

// CreateComplianceCheck records the outcome of one validation run against a
// translation. Written by the background worker, never on the request path.
func CreateComplianceCheck(ctx context.Context, db *gorm.DB, translationID string, ruleSet map[string]any, isCompliant bool, validationResult string, suggestions map[string]any) (*domain.ComplianceCheck, error) {
	c := &domain.ComplianceCheck{
		ID:               uuid.NewString(),
		TranslationID:    translationID,
		RuleSet:          datatypes.JSONMap(ruleSet),
		IsCompliant:      isCompliant,
		ValidationResult: validationResult,
		Suggestions:      datatypes.JSONMap(suggestions),
		CreatedAt:        time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ListComplianceChecks returns all checks recorded for a translation, newest
// first. An empty slice means no validation has completed yet (or none was
// requested); that is not an error.
func ListComplianceChecks(ctx context.Context, db *gorm.DB, translationID string) ([]domain.ComplianceCheck, error) {
	var out []domain.ComplianceCheck
	err := db.WithContext(ctx).
		Where("translation_id = ?", translationID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// CreateComplianceTemplate inserts a reusable named rule pack.
func CreateComplianceTemplate(ctx context.Context, db *gorm.DB, name, description string, rules map[string]any, category, version string) (*domain.ComplianceTemplate, error) {
	t := &domain.ComplianceTemplate{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Rules:       datatypes.JSONMap(rules),
		Category:    category,
		Version:     version,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// GetComplianceTemplate fetches an active template by ID, or ErrNotFound.
func GetComplianceTemplate(ctx context.Context, db *gorm.DB, id string) (*domain.ComplianceTemplate, error) {
	var t domain.ComplianceTemplate
	err := db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListComplianceTemplates returns active templates, optionally filtered by
// category, ordered by name.
func ListComplianceTemplates(ctx context.Context, db *gorm.DB, category string) ([]domain.ComplianceTemplate, error) {
	q := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []domain.ComplianceTemplate
	err := q.Find(&out).Error
	return out, err
}
