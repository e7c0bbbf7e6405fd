// Package provider defines the contract with the external language-model
// collaborator and its OpenAI-compatible HTTP implementation. The rest of
// the application treats translation and compliance validation as opaque,
// potentially slow and fallible remote functions behind the Translator
// interface.
package provider

import "context"

// Request is the ephemeral translation request tuple. It is never persisted;
// it exists to compute the cache key and to invoke the external provider.
type Request struct {
	Text       string         `json:"text"`
	SourceLang string         `json:"source_lang"`
	TargetLang string         `json:"target_lang"`
	Context    map[string]any `json:"context,omitempty"`
}

// Result is the provider's translation response. Cached results and freshly
// computed results share this exact shape.
type Result struct {
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
	ContextApplied bool   `json:"context_applied"`
}

// ComplianceResult is the provider's verdict on cultural/compliance
// validation of a text.
type ComplianceResult struct {
	IsCompliant      bool           `json:"is_compliant"`
	ValidationResult string         `json:"validation_result"`
	Suggestions      map[string]any `json:"suggestions,omitempty"`
}

// Translator is the opaque external inference collaborator.
//
// Implementations must honor the context for cancellation and timeouts and
// should be safe for concurrent use.
type Translator interface {
	// Translate converts req.Text between the given language pair, applying
	// cultural context when provided.
	Translate(ctx context.Context, req Request) (Result, error)

	// ValidateCompliance checks text (in lang) against the given rules.
	ValidateCompliance(ctx context.Context, text, lang string, rules map[string]any) (ComplianceResult, error)
}
