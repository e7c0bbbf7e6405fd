// Package services – ComplianceService
//
// This file implements ComplianceService, which manages reusable compliance
// rule templates (e.g. GDPR or KVKK rule packs) and on-demand validation of
// arbitrary text. Asynchronous validation of translations lives in
// TranslationService; this service covers the synchronous surfaces.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
	"github.com/eakarpinar/go-translation-backend/internal/provider"
	"github.com/eakarpinar/go-translation-backend/internal/repo"
)

// ComplianceService manages rule templates and synchronous validation.
type ComplianceService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Provider performs the actual validation calls.
	Provider provider.Translator
}

// NewComplianceService constructs a ComplianceService.
func NewComplianceService(db *gorm.DB, p provider.Translator) *ComplianceService {
	return &ComplianceService{DB: db, Provider: p}
}

// CreateTemplate stores a named rule pack. Name and rules are required.
func (s *ComplianceService) CreateTemplate(ctx context.Context, name, description string, rules map[string]any, category, version string) (*domain.ComplianceTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyText
	}
	if len(rules) == 0 {
		return nil, ErrEmptyRules
	}
	return repo.CreateComplianceTemplate(ctx, s.DB, name, strings.TrimSpace(description), rules, category, version)
}

// GetTemplate fetches an active template or ErrTemplateNotFound.
func (s *ComplianceService) GetTemplate(ctx context.Context, id string) (*domain.ComplianceTemplate, error) {
	t, err := repo.GetComplianceTemplate(ctx, s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTemplateNotFound
	}
	return t, err
}

// ListTemplates returns active templates, optionally filtered by category.
func (s *ComplianceService) ListTemplates(ctx context.Context, category string) ([]domain.ComplianceTemplate, error) {
	return repo.ListComplianceTemplates(ctx, s.DB, category)
}

// ResolveRules returns the rule map for a template reference. Used when a
// translation request names a template instead of inlining rules.
func (s *ComplianceService) ResolveRules(ctx context.Context, templateID string) (map[string]any, error) {
	t, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	return map[string]any(t.Rules), nil
}

// Validate runs a synchronous compliance check of text against rules. It is
// a direct provider pass-through with input validation; nothing is persisted.
func (s *ComplianceService) Validate(ctx context.Context, text, lang string, rules map[string]any) (provider.ComplianceResult, error) {
	tr := otel.Tracer("services/ComplianceService")
	ctx, span := tr.Start(ctx, "Validate",
		trace.WithAttributes(attribute.String("lang", lang)),
	)
	defer span.End()

	text = strings.TrimSpace(text)
	if text == "" {
		return provider.ComplianceResult{}, ErrEmptyText
	}
	if len(rules) == 0 {
		return provider.ComplianceResult{}, ErrEmptyRules
	}
	res, err := s.Provider.ValidateCompliance(ctx, text, lang, rules)
	if err != nil {
		return provider.ComplianceResult{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	span.SetAttributes(attribute.Bool("compliance.ok", res.IsCompliant))
	return res, nil
}
