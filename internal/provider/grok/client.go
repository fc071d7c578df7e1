// Package grok implements the xAI Grok chat completions provider.
package grok

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mandalnilabja/cliprelay/internal/types"
)

const (
	defaultBaseURL = "https://api.x.ai/v1"
	defaultModel   = "grok-beta"
)

// Provider implements the provider.Provider interface for xAI.
type Provider struct {
	baseURL string
	model   string
}

// New creates a Grok provider, defaulting to the public xAI API.
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
	return types.ProviderGrok
}

// BaseURL returns the xAI API root.
func (p *Provider) BaseURL() string {
	return p.baseURL
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

// NewRequest builds a single-message chat completion with bearer auth.
func (p *Provider) NewRequest(ctx context.Context, apiKey, text string) (*http.Request, error) {
	body, err := json.Marshal(chatRequest{
		Model:    p.model,
		Messages: []message{{Role: "user", Content: types.Prompt(text)}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	return req, nil
}
