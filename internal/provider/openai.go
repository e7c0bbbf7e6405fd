package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Default client settings for the OpenAI-compatible chat completions API.
const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-3.5-turbo"
	defaultTimeout = 30 * time.Second

	translateMaxTokens  = 1500
	complianceMaxTokens = 1000
	temperature         = 0.3
)

// OpenAIClient talks to an OpenAI-compatible /v1/chat/completions endpoint.
// It is safe for concurrent use.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	http    *resty.Client
}

// NewOpenAIClient constructs a client. Empty baseURL, model, or timeout fall
// back to the package defaults. The timeout bounds every provider call;
// expiry surfaces as an ordinary request error to the caller.
func NewOpenAIClient(apiKey, baseURL, model string, timeout time.Duration) *OpenAIClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    resty.New().SetTimeout(timeout),
	}
}

// chatMessage is a single role/content entry in a chat completion request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the completion response we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Translate implements Translator using a chat completion with a
// direction-specific system prompt. Cultural context, when present, is
// appended to the user message as indented JSON.
func (c *OpenAIClient) Translate(ctx context.Context, req Request) (Result, error) {
	direction := "Turkish to English"
	if req.SourceLang == "en" {
		direction = "English to Turkish"
	}
	system := "You are an expert translator and cultural adaptation specialist for " +
		direction + " content. Consider cultural nuances, idioms, and compliance requirements in your translations."

	user := fmt.Sprintf("Translate the following text from %s to %s:\n\n%s",
		req.SourceLang, req.TargetLang, req.Text)
	if len(req.Context) > 0 {
		ctxJSON, err := json.MarshalIndent(req.Context, "", "  ")
		if err != nil {
			return Result{}, fmt.Errorf("encode context: %w", err)
		}
		user += "\n\nConsider this context:\n" + string(ctxJSON)
	}

	content, err := c.complete(ctx, system, user, translateMaxTokens)
	if err != nil {
		return Result{}, err
	}
	return Result{
		TranslatedText: content,
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
		ContextApplied: len(req.Context) > 0,
	}, nil
}

// ValidateCompliance implements Translator. The provider's free-text verdict
// is returned verbatim in ValidationResult; IsCompliant is true unless the
// verdict opens with a recognizable rejection marker.
func (c *OpenAIClient) ValidateCompliance(ctx context.Context, text, lang string, rules map[string]any) (ComplianceResult, error) {
	audience := "English"
	if lang == "tr" {
		audience = "Turkish"
	}
	system := "You are a cultural compliance validator specializing in " + audience +
		" content. Analyze the text for compliance with provided rules and cultural appropriateness."

	rulesJSON, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return ComplianceResult{}, fmt.Errorf("encode rules: %w", err)
	}
	user := fmt.Sprintf(
		"Validate the following %s text for cultural and compliance requirements:\n\nText: %s\n\nCompliance Rules:\n%s",
		lang, text, rulesJSON)

	content, err := c.complete(ctx, system, user, complianceMaxTokens)
	if err != nil {
		return ComplianceResult{}, err
	}
	return ComplianceResult{
		IsCompliant:      !looksNonCompliant(content),
		ValidationResult: content,
	}, nil
}

// complete performs one chat completion and returns the first choice's
// trimmed content.
func (c *OpenAIClient) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	body := map[string]any{
		"model": c.model,
		"messages": []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post(c.baseURL + "/v1/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion: %s; body: %s", resp.Status(), resp.String())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat completion: no choices returned")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// looksNonCompliant applies a conservative heuristic over the validator's
// free-text verdict. Only an explicit leading rejection counts; anything
// ambiguous is treated as compliant and left to the human-readable result.
func looksNonCompliant(verdict string) bool {
	head := strings.ToLower(verdict)
	if len(head) > 160 {
		head = head[:160]
	}
	for _, marker := range []string{"not compliant", "non-compliant", "noncompliant", "fails to comply", "does not comply"} {
		if strings.Contains(head, marker) {
			return true
		}
	}
	return false
}
