package services

import (
	"context"
	"errors"
	"testing"

	"github.com/eakarpinar/go-translation-backend/internal/provider"
)

func newComplianceService(t *testing.T) (*ComplianceService, *fakeTranslator) {
	t.Helper()
	prov := &fakeTranslator{compliance: provider.ComplianceResult{IsCompliant: true, ValidationResult: "ok"}}
	return NewComplianceService(newTestDB(t), prov), prov
}

func TestCreateGetTemplate(t *testing.T) {
	svc, _ := newComplianceService(t)
	rules := map[string]any{"formality": "required", "max_informality": float64(2)}

	tpl, err := svc.CreateTemplate(context.Background(), " KVKK Pack ", " Turkish data-protection rules ", rules, "legal", "1.0")
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	if tpl.Name != "KVKK Pack" || tpl.Description != "Turkish data-protection rules" {
		t.Fatalf("template = %+v", tpl)
	}
	if !tpl.IsActive || tpl.Category != "legal" || tpl.Version != "1.0" {
		t.Fatalf("template metadata = %+v", tpl)
	}

	got, err := svc.GetTemplate(context.Background(), tpl.ID)
	if err != nil || got.ID != tpl.ID {
		t.Fatalf("GetTemplate = (%+v, %v)", got, err)
	}
	if _, err := svc.GetTemplate(context.Background(), "00000000-0000-0000-0000-000000000000"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("unknown id err = %v, want ErrTemplateNotFound", err)
	}
}

func TestCreateTemplate_Validation(t *testing.T) {
	svc, _ := newComplianceService(t)
	if _, err := svc.CreateTemplate(context.Background(), "  ", "", map[string]any{"a": 1}, "", ""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("empty name err = %v", err)
	}
	if _, err := svc.CreateTemplate(context.Background(), "pack", "", nil, "", ""); !errors.Is(err, ErrEmptyRules) {
		t.Fatalf("empty rules err = %v", err)
	}
}

func TestListTemplates_CategoryFilter(t *testing.T) {
	svc, _ := newComplianceService(t)
	rules := map[string]any{"r": "v"}
	mustCreate := func(name, category string) {
		t.Helper()
		if _, err := svc.CreateTemplate(context.Background(), name, "", rules, category, ""); err != nil {
			t.Fatalf("CreateTemplate %s: %v", name, err)
		}
	}
	mustCreate("gdpr", "legal")
	mustCreate("kvkk", "legal")
	mustCreate("brand-voice", "marketing")

	all, err := svc.ListTemplates(context.Background(), "")
	if err != nil || len(all) != 3 {
		t.Fatalf("all = %d err=%v", len(all), err)
	}
	legal, err := svc.ListTemplates(context.Background(), "legal")
	if err != nil || len(legal) != 2 {
		t.Fatalf("legal = %d err=%v", len(legal), err)
	}
	none, err := svc.ListTemplates(context.Background(), "medical")
	if err != nil || len(none) != 0 {
		t.Fatalf("medical = %d err=%v", len(none), err)
	}
}

func TestResolveRules(t *testing.T) {
	svc, _ := newComplianceService(t)
	rules := map[string]any{"formality": "required"}
	tpl, err := svc.CreateTemplate(context.Background(), "pack", "", rules, "", "")
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}

	got, err := svc.ResolveRules(context.Background(), tpl.ID)
	if err != nil {
		t.Fatalf("ResolveRules: %v", err)
	}
	if got["formality"] != "required" {
		t.Fatalf("rules = %#v", got)
	}
	if _, err := svc.ResolveRules(context.Background(), "missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("err = %v, want ErrTemplateNotFound", err)
	}
}

func TestValidate(t *testing.T) {
	svc, prov := newComplianceService(t)
	rules := map[string]any{"formality": "required"}

	res, err := svc.Validate(context.Background(), " Merhaba ", "tr", rules)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !res.IsCompliant || res.ValidationResult != "ok" {
		t.Fatalf("result = %+v", res)
	}
	if len(prov.complianceArgs) != 1 {
		t.Fatalf("provider calls = %d", len(prov.complianceArgs))
	}
}

func TestValidate_InputAndProviderErrors(t *testing.T) {
	svc, prov := newComplianceService(t)
	rules := map[string]any{"r": "v"}

	if _, err := svc.Validate(context.Background(), "   ", "tr", rules); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("empty text err = %v", err)
	}
	if _, err := svc.Validate(context.Background(), "text", "tr", nil); !errors.Is(err, ErrEmptyRules) {
		t.Fatalf("empty rules err = %v", err)
	}

	prov.complianceErr = errors.New("upstream 500")
	if _, err := svc.Validate(context.Background(), "text", "tr", rules); !errors.Is(err, ErrProviderFailure) {
		t.Fatalf("provider failure err = %v", err)
	}
	// Input rejections must not reach the provider; only the last call did.
	if len(prov.complianceArgs) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(prov.complianceArgs))
	}
}
