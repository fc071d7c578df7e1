// Package client is the caller side of the relay: HTTP transports for the
// two wire encodings and a Controller that owns the interactive state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Transport selects the wire encoding of a relay call.
type Transport string

// Supported transports.
const (
	TransportGET  Transport = http.MethodGet
	TransportPOST Transport = http.MethodPost
)

// Response is what came back from the relay, undecoded.
type Response struct {
	StatusCode int
	Body       []byte
}

// Caller issues one relay call. *Client implements it.
type Caller interface {
	Call(ctx context.Context, mode Transport, provider, text string) (*Response, error)
}

// Client talks to a relay server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the relay at baseURL. A nil httpClient gets a
// client with a 2 minute timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Endpoint returns the relay path for provider.
func Endpoint(provider string) string {
	return "/api/" + url.PathEscape(provider)
}

// Call sends text to /api/{provider} using the given transport.
func (c *Client) Call(ctx context.Context, mode Transport, provider, text string) (*Response, error) {
	req, err := c.newRequest(ctx, mode, provider, text)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *Client) newRequest(ctx context.Context, mode Transport, provider, text string) (*http.Request, error) {
	target := c.baseURL + Endpoint(provider)

	switch mode {
	case TransportGET:
		return http.NewRequestWithContext(ctx, http.MethodGet, target+"?text="+url.QueryEscape(text), nil)
	case TransportPOST:
		body, err := json.Marshal(map[string]string{"text": text})
		if err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	default:
		return nil, fmt.Errorf("unsupported transport %q", mode)
	}
}
