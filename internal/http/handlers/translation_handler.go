// Translation HTTP handlers.
//
// This file exposes REST endpoints for translation resources:
//   - POST   /translations                  (run the pipeline, create a record)
//   - GET    /translations                  (list, paginated, ETag support)
//   - GET    /translations/{id}             (fetch one)
//   - DELETE /translations/{id}             (remove one)
//   - GET    /translations/{id}/compliance  (recorded validation outcomes)
//
// Handlers are transport-thin:
//   - validate & normalize inputs (text, language codes, rule references)
//   - delegate to application services (TranslationService)
//   - implement conditional responses (ETag) and idempotency semantics
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a previous successful
// result exists for (user, key), the handler returns that recorded
// translation and sets `Idempotency-Replayed: true`.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
	"github.com/eakarpinar/go-translation-backend/internal/http/middleware"
	"github.com/eakarpinar/go-translation-backend/internal/repo"
	"github.com/eakarpinar/go-translation-backend/internal/services"
)

//
// DTOs
//

// TranslateRequest is the JSON payload for creating a translation.
type TranslateRequest struct {
	// Text is the source content to translate. It must be non-empty.
	Text string `json:"text" binding:"required,min=1" example:"Merhaba dünya"`
	// SourceLang is an ISO 639-1 code, currently "tr" or "en".
	SourceLang string `json:"source_lang" binding:"required,len=2" example:"tr"`
	// TargetLang is an ISO 639-1 code, currently "tr" or "en".
	TargetLang string `json:"target_lang" binding:"required,len=2" example:"en"`
	// Context optionally carries cultural adaptation hints for the provider.
	Context map[string]any `json:"context,omitempty"`
	// ComplianceRules optionally schedules asynchronous validation with these rules.
	ComplianceRules map[string]any `json:"compliance_rules,omitempty"`
	// ComplianceTemplateID optionally references a stored rule template
	// instead of inlining rules. Ignored when ComplianceRules is set.
	ComplianceTemplateID string `json:"compliance_template_id,omitempty" format:"uuid"`
}

// ListTranslationsResponse wraps a page of translations and pagination information.
type ListTranslationsResponse struct {
	Translations []domain.Translation `json:"translations"`
	Pagination   Pagination           `json:"pagination"`
}

// ComplianceChecksResponse wraps the recorded validation outcomes for one translation.
type ComplianceChecksResponse struct {
	TranslationID string                   `json:"translation_id"`
	Checks        []domain.ComplianceCheck `json:"checks"`
}

//
// Handlers
//

// CreateTranslation godoc
// @ID          createTranslation
// @Summary     Translate text
// @Description Runs the translation pipeline (quota admission, cache, provider) and persists the result.
// @Description Supports idempotency via the Idempotency-Key header (same key → same result).
// @Description When compliance rules are supplied, validation runs asynchronously; poll the compliance endpoint for outcomes.
// @Tags        Translations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.TranslateRequest  true  "Translation payload"
//
// @Success     201  {object}  domain.Translation
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request / unsupported language"
// @Failure     403  {object}  handlers.ErrorResponse  "Subscription inactive"
// @Failure     429  {object}  handlers.ErrorResponse  "Quota exceeded"
// @Failure     502  {object}  handlers.ErrorResponse  "Provider failure"
// @Failure     503  {object}  handlers.ErrorResponse  "Counter store unavailable"
// @Router      /translations [post]
func (h *Handlers) CreateTranslation(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text, source_lang and target_lang required")
		return
	}

	// Idempotency (replay path) – read validated key if present.
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey != "" {
		if db := h.transDB(); db != nil {
			if rec, err := repo.GetIdempotency(ctx, db, uid, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetTranslation(ctx, db, rec.TranslationID, uid); err2 == nil {
					c.Header("Idempotency-Replayed", "true")
					ok(c, http.StatusOK, prev)
					return
				}
			}
		}
	}

	// A template reference expands to its stored rules unless rules are inlined.
	rules := req.ComplianceRules
	if len(rules) == 0 && req.ComplianceTemplateID != "" {
		if _, err := uuid.Parse(req.ComplianceTemplateID); err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "compliance_template_id must be a UUID")
			return
		}
		resolved, err := h.compSvc.ResolveRules(ctx, req.ComplianceTemplateID)
		if err != nil {
			if errors.Is(err, services.ErrTemplateNotFound) {
				fail(c, http.StatusBadRequest, ErrCodeBadRequest, "compliance template not found")
				return
			}
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
			return
		}
		rules = resolved
	}

	t, err := h.transSvc.Translate(ctx, uid, services.TranslateInput{
		Text:            req.Text,
		SourceLang:      req.SourceLang,
		TargetLang:      req.TargetLang,
		Context:         req.Context,
		ComplianceRules: rules,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyText), errors.Is(err, services.ErrTextTooLong):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrUnsupportedLanguage):
			fail(c, http.StatusBadRequest, ErrCodeUnsupportedLanguage, "only the tr/en language pair is supported")
		case errors.Is(err, services.ErrNoActiveSubscription):
			fail(c, http.StatusForbidden, ErrCodeSubscriptionBlocked, "subscription is not active")
		case errors.Is(err, services.ErrQuotaExceeded):
			fail(c, http.StatusTooManyRequests, ErrCodeQuotaExceeded, "monthly request quota exceeded")
		case errors.Is(err, services.ErrCounterUnavailable):
			fail(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "quota service temporarily unavailable")
		case errors.Is(err, services.ErrProviderFailure):
			fail(c, http.StatusBadGateway, ErrCodeProviderFailed, "translation provider failed")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeTranslateFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if db := h.transDB(); db != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateIdempotency(ctx, db, uid, idemKey, t.ID, http.StatusCreated, ttl)
		}
	}

	ok(c, http.StatusCreated, t)
}

// ListTranslations godoc
// @ID          listTranslations
// @Summary     List translations (paginated)
// @Description Returns a page of the user's translations, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Translations
// @Produce     json
// @Security    BearerAuth
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListTranslationsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /translations [get]
func (h *Handlers) ListTranslations(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if db := h.transDB(); db != nil {
		count, maxTS, err := repo.TranslationsStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"translations:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.transSvc.ListPage(ctx, uid, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListTranslationsResponse{
		Translations: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetTranslation godoc
// @ID          getTranslation
// @Summary     Fetch one translation
// @Description Returns a single translation owned by the current user.
// @Tags        Translations
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Translation ID (UUID)"  format(uuid)
//
// @Success     200  {object} domain.Translation
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Translation not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /translations/{id} [get]
func (h *Handlers) GetTranslation(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "translation id must be a UUID")
		return
	}

	t, err := h.transSvc.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrTranslationNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "translation not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, t)
}

// DeleteTranslation godoc
// @ID          deleteTranslation
// @Summary     Delete a translation
// @Description Removes a translation owned by the current user. Foreign records read as not found.
// @Tags        Translations
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Translation ID (UUID)"  format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Translation not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /translations/{id} [delete]
func (h *Handlers) DeleteTranslation(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "translation id must be a UUID")
		return
	}

	if err := h.transSvc.Delete(c.Request.Context(), userID(c), id); err != nil {
		if errors.Is(err, services.ErrTranslationNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "translation not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// GetTranslationCompliance godoc
// @ID          getTranslationCompliance
// @Summary     Get compliance outcomes for a translation
// @Description Returns recorded validation outcomes, newest first. An empty list means validation has not completed (or was never requested).
// @Tags        Translations
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Translation ID (UUID)"  format(uuid)
//
// @Success     200  {object} handlers.ComplianceChecksResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Translation not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /translations/{id}/compliance [get]
func (h *Handlers) GetTranslationCompliance(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "translation id must be a UUID")
		return
	}

	checks, err := h.transSvc.ComplianceChecks(c.Request.Context(), userID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrTranslationNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "translation not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, ComplianceChecksResponse{
		TranslationID: id,
		Checks:        checks,
	})
}

// transDB inspects the concrete TranslationService for its DB handle, used by
// best-effort paths (ETag stats, idempotency records). Nil when the handler
// is wired with a non-default implementation.
func (h *Handlers) transDB() *gorm.DB {
	if svc, okSvc := h.transSvc.(*services.TranslationService); okSvc {
		return svc.DB
	}
	return nil
}
