// Package services – TranslationService
//
// This file implements TranslationService, the application-level component
// that owns the translation request pipeline. A request passes, in order:
// input validation, the subscription gate, atomic quota admission, the
// content-addressed cache, the upstream provider, and persistence. When the
// request carries compliance rules, validation is scheduled on the
// background pool after the record is persisted; its outcome never affects
// the response.
//
// Ordering guarantees:
//   - Validation failures and quota rejections consume no quota and reach
//     neither the cache nor the provider.
//   - Cache hits consume quota like any other admitted request.
//   - A provider failure surfaces after quota was consumed; admission is
//     deliberately not refunded.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include user identifiers, language pair, and cache/quota verdicts.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
	"github.com/eakarpinar/go-translation-backend/internal/provider"
	"github.com/eakarpinar/go-translation-backend/internal/repo"
)

// supportedLangs is the language pair currently served.
var supportedLangs = map[string]struct{}{
	"tr": {},
	"en": {},
}

// QuotaGate is the admission contract required by TranslationService.
// *limiter.QuotaLimiter satisfies it.
type QuotaGate interface {
	// Allow atomically admits one request for userID under limit, returning
	// the verdict and the counter value after the call.
	Allow(ctx context.Context, userID string, limit int64) (bool, int64, error)

	// Usage reads the current counter without consuming quota.
	Usage(ctx context.Context, userID string) (int64, error)
}

// ResultCache is the cache contract required by TranslationService.
// *cache.TranslationCache satisfies it.
type ResultCache interface {
	Lookup(ctx context.Context, req provider.Request) (provider.Result, bool, error)
	Store(ctx context.Context, req provider.Request, res provider.Result) error
}

// Tasks is the background execution contract required by TranslationService.
// *worker.Pool satisfies it.
type Tasks interface {
	Go(name string, fn func(ctx context.Context) error)
}

// TranslateInput carries one translation request through the pipeline.
type TranslateInput struct {
	Text       string
	SourceLang string
	TargetLang string

	// Context holds cultural adaptation hints forwarded to the provider and
	// snapshotted on the persisted record.
	Context map[string]any

	// ComplianceRules, when non-empty, schedules asynchronous validation of
	// the translated text after the response is sent.
	ComplianceRules map[string]any
}

// TranslationService coordinates quota admission, caching, provider calls,
// and persistence for translation requests.
type TranslationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Subs manages the subscription gate and tier limits.
	Subs *SubscriptionService
	// Quota decides admission against the shared counter store.
	Quota QuotaGate
	// Cache is the content-addressed result cache.
	Cache ResultCache
	// Provider performs the actual translation and compliance calls.
	Provider provider.Translator
	// Tasks runs detached background work (compliance validation).
	Tasks Tasks
	// Log receives non-fatal pipeline events (cache write failures etc.).
	Log zerolog.Logger

	// MaxTextRunes caps request text by rune length; 0 disables the check.
	MaxTextRunes int
}

// Translate runs the full pipeline for one request and returns the persisted
// record. See the package comment for ordering guarantees.
func (s *TranslationService) Translate(ctx context.Context, userID string, in TranslateInput) (*domain.Translation, error) {
	tr := otel.Tracer("services/TranslationService")
	ctx, span := tr.Start(ctx, "Translate",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("lang.source", in.SourceLang),
			attribute.String("lang.target", in.TargetLang),
		),
	)
	defer span.End()

	// Normalize & validate before touching quota or cache.
	in.Text = strings.TrimSpace(in.Text)
	if in.Text == "" {
		return nil, ErrEmptyText
	}
	if s.MaxTextRunes > 0 && utf8.RuneCountInString(in.Text) > s.MaxTextRunes {
		return nil, ErrTextTooLong
	}
	if err := validateLangPair(in.SourceLang, in.TargetLang); err != nil {
		return nil, err
	}

	// Subscription gate.
	sub, err := s.Subs.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !sub.IsActive {
		return nil, ErrNoActiveSubscription
	}

	// Atomic quota admission. A rejection leaves the counter untouched.
	limit := sub.EffectiveLimit()
	admitted, count, err := s.Quota.Allow(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}
	span.SetAttributes(
		attribute.Bool("quota.admitted", admitted),
		attribute.Int64("quota.count", count),
		attribute.Int64("quota.limit", limit),
	)
	if !admitted {
		return nil, ErrQuotaExceeded
	}

	req := provider.Request{
		Text:       in.Text,
		SourceLang: in.SourceLang,
		TargetLang: in.TargetLang,
		Context:    in.Context,
	}

	// Cache, then provider on a miss.
	res, hit, err := s.Cache.Lookup(ctx, req)
	if err != nil {
		// A cache outage degrades to a miss.
		s.Log.Warn().Err(err).Msg("translation cache lookup failed")
		hit = false
	}
	span.SetAttributes(attribute.Bool("cache.hit", hit))
	if !hit {
		res, err = s.Provider.Translate(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
		}
		if cerr := s.Cache.Store(ctx, req, res); cerr != nil {
			s.Log.Warn().Err(cerr).Msg("translation cache store failed")
		}
	}

	t, err := repo.CreateTranslation(ctx, s.DB, userID,
		in.Text, res.TranslatedText, in.SourceLang, in.TargetLang,
		in.Context,
		map[string]any{
			"cache_hit":       hit,
			"context_applied": res.ContextApplied,
		})
	if err != nil {
		return nil, err
	}

	// Detached compliance validation; outcome is persisted, never returned.
	if len(in.ComplianceRules) > 0 {
		s.scheduleCompliance(t, in.ComplianceRules)
	}

	// Persistent usage bookkeeping; admission already happened above.
	if err := s.Subs.RecordUsage(ctx, sub.ID); err != nil {
		s.Log.Warn().Err(err).Str("subscription_id", sub.ID).Msg("usage bookkeeping failed")
	}

	return t, nil
}

// Get fetches one translation owned by userID, or ErrTranslationNotFound.
func (s *TranslationService) Get(ctx context.Context, userID, id string) (*domain.Translation, error) {
	t, err := repo.GetTranslation(ctx, s.DB, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTranslationNotFound
	}
	return t, err
}

// ListPage returns paginated translations for a user, newest first.
// It applies defaults for invalid page/pageSize and returns total count.
func (s *TranslationService) ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.Translation, int64, error) {
	tr := otel.Tracer("services/TranslationService")
	ctx, span := tr.Start(ctx, "ListPage",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountTranslations(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Translation{}, 0, nil
	}

	items, err := repo.ListTranslationsPage(ctx, s.DB, userID, offset, pageSize)
	return items, total, err
}

// Delete soft-deletes a translation owned by userID. A record owned by
// another user is reported as ErrTranslationNotFound.
func (s *TranslationService) Delete(ctx context.Context, userID, id string) error {
	err := repo.DeleteTranslation(ctx, s.DB, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTranslationNotFound
	}
	return err
}

// ComplianceChecks returns the recorded validation outcomes for a translation
// owned by userID, newest first. An empty slice means validation has not
// completed (or was never requested).
func (s *TranslationService) ComplianceChecks(ctx context.Context, userID, id string) ([]domain.ComplianceCheck, error) {
	// Ownership gate first so foreign IDs read as missing.
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	return repo.ListComplianceChecks(ctx, s.DB, id)
}

// scheduleCompliance submits detached validation of a persisted translation.
// The task context comes from the pool, not the request, so a client
// disconnect cannot abort it.
func (s *TranslationService) scheduleCompliance(t *domain.Translation, rules map[string]any) {
	translationID := t.ID
	text := t.TranslatedText
	lang := t.TargetLang

	s.Tasks.Go("compliance-validate", func(ctx context.Context) error {
		res, err := s.Provider.ValidateCompliance(ctx, text, lang, rules)
		if err != nil {
			return fmt.Errorf("validate translation %s: %w", translationID, err)
		}
		_, err = repo.CreateComplianceCheck(ctx, s.DB, translationID, rules, res.IsCompliant, res.ValidationResult, res.Suggestions)
		if err != nil {
			return fmt.Errorf("record compliance check for %s: %w", translationID, err)
		}
		return nil
	})
}

// validateLangPair enforces the supported pair: both codes known, not equal.
func validateLangPair(src, tgt string) error {
	if _, ok := supportedLangs[src]; !ok {
		return ErrUnsupportedLanguage
	}
	if _, ok := supportedLangs[tgt]; !ok {
		return ErrUnsupportedLanguage
	}
	if src == tgt {
		return ErrUnsupportedLanguage
	}
	return nil
}
