// Compliance HTTP handlers.
//
// This file exposes REST endpoints for compliance rule templates and
// synchronous validation:
//   - GET  /compliance/templates        (list, optional category filter)
//   - POST /compliance/templates        (create; admin only)
//   - GET  /compliance/templates/{id}   (fetch one)
//   - POST /compliance/validate         (synchronous ad-hoc validation)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
	"github.com/eakarpinar/go-translation-backend/internal/services"
)

//
// DTOs
//

// CreateTemplateRequest is the JSON payload for storing a rule template.
type CreateTemplateRequest struct {
	// Name identifies the rule pack (e.g. "KVKK marketing copy").
	Name string `json:"name" binding:"required,min=1,max=255" example:"KVKK marketing copy"`
	// Description optionally explains when to apply the template.
	Description string `json:"description" example:"Rules for consumer-facing marketing text under KVKK"`
	// Rules is the rule map forwarded to the validator. Must be non-empty.
	Rules map[string]any `json:"rules" binding:"required"`
	// Category groups templates (e.g. "GDPR", "KVKK").
	Category string `json:"category" example:"KVKK"`
	// Version is a free-form revision marker.
	Version string `json:"version" example:"2024-03"`
}

// ValidateRequest is the JSON payload for synchronous ad-hoc validation.
type ValidateRequest struct {
	// Text is the content to validate.
	Text string `json:"text" binding:"required,min=1"`
	// Lang is the text's language code ("tr" or "en").
	Lang string `json:"lang" binding:"required,len=2" example:"tr"`
	// Rules is the inline rule map. Required unless TemplateID is set.
	Rules map[string]any `json:"rules,omitempty"`
	// TemplateID optionally references a stored template instead of inline rules.
	TemplateID string `json:"template_id,omitempty" format:"uuid"`
}

// ListTemplatesResponse wraps the active templates.
type ListTemplatesResponse struct {
	Templates []domain.ComplianceTemplate `json:"templates"`
}

//
// Handlers
//

// ListTemplates godoc
// @ID          listComplianceTemplates
// @Summary     List compliance templates
// @Description Returns active rule templates, optionally filtered by category.
// @Tags        Compliance
// @Produce     json
// @Security    BearerAuth
//
// @Param       category  query  string  false "Category filter (e.g. GDPR, KVKK)"
//
// @Success     200  {object}  handlers.ListTemplatesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /compliance/templates [get]
func (h *Handlers) ListTemplates(c *gin.Context) {
	items, err := h.compSvc.ListTemplates(c.Request.Context(), c.Query("category"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListTemplatesResponse{Templates: items})
}

// CreateTemplate godoc
// @ID          createComplianceTemplate
// @Summary     Create a compliance template
// @Description Stores a named rule pack for reuse in translation requests. Requires the admin role.
// @Tags        Compliance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreateTemplateRequest  true  "Template payload"
//
// @Success     201  {object}  domain.ComplianceTemplate
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Admin role required"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /compliance/templates [post]
func (h *Handlers) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and rules required")
		return
	}

	t, err := h.compSvc.CreateTemplate(c.Request.Context(), req.Name, req.Description, req.Rules, req.Category, req.Version)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyText), errors.Is(err, services.ErrEmptyRules):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, t)
}

// GetTemplate godoc
// @ID          getComplianceTemplate
// @Summary     Fetch one compliance template
// @Tags        Compliance
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Template ID (UUID)"  format(uuid)
//
// @Success     200  {object}  domain.ComplianceTemplate
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Template not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /compliance/templates/{id} [get]
func (h *Handlers) GetTemplate(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "template id must be a UUID")
		return
	}

	t, err := h.compSvc.GetTemplate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "compliance template not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, t)
}

// ValidateText godoc
// @ID          validateText
// @Summary     Validate text against compliance rules
// @Description Runs a synchronous validation of arbitrary text. Nothing is persisted and no quota is consumed.
// @Tags        Compliance
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.ValidateRequest  true  "Validation payload"
//
// @Success     200  {object}  provider.ComplianceResult
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     502  {object}  handlers.ErrorResponse  "Provider failure"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /compliance/validate [post]
func (h *Handlers) ValidateText(c *gin.Context) {
	ctx := c.Request.Context()

	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text and lang required")
		return
	}

	rules := req.Rules
	if len(rules) == 0 && req.TemplateID != "" {
		resolved, err := h.compSvc.ResolveRules(ctx, req.TemplateID)
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

	res, err := h.compSvc.Validate(ctx, req.Text, req.Lang, rules)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyText), errors.Is(err, services.ErrEmptyRules):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrProviderFailure):
			fail(c, http.StatusBadGateway, ErrCodeProviderFailed, "compliance validator failed")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, res)
}
