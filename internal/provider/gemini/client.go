// Package gemini implements the Google Gemini generateContent provider.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mandalnilabja/cliprelay/internal/types"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-pro"
)

// Provider implements the provider.Provider interface for Gemini.
// The API key is supplied per request, never stored on the provider.
type Provider struct {
	baseURL string
	model   string
}

// New creates a Gemini provider. Empty arguments fall back to the public API
// and the gemini-pro model.
func New(baseURL, model string) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Provider{baseURL: strings.TrimRight(baseURL, "/"), model: model}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return types.ProviderGemini
}

// BaseURL returns the Gemini API root.
func (p *Provider) BaseURL() string {
	return p.baseURL
}

// URL returns the generateContent endpoint for the configured model.
func (p *Provider) URL() string {
	return fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

// NewRequest builds the generateContent call with the key in x-goog-api-key.
func (p *Provider) NewRequest(ctx context.Context, apiKey, text string) (*http.Request, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: types.Prompt(text)}}}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)
	return req, nil
}
