// Package relay forwards one text prompt to one provider and hands back the
// provider's JSON untouched.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mandalnilabja/cliprelay/internal/config"
	"github.com/mandalnilabja/cliprelay/internal/provider"
	"github.com/mandalnilabja/cliprelay/internal/tokenizer"
	"github.com/mandalnilabja/cliprelay/internal/types"
)

// maxUpstreamBody caps how much of a provider response is buffered.
const maxUpstreamBody = 10 << 20

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Relay. Zero values are usable.
type Options struct {
	// Client sends the outbound call; defaults to a plain *http.Client
	Client Doer

	// Timeout bounds the outbound call; zero means only the caller's context
	Timeout time.Duration

	// Counter estimates prompt tokens for logging; nil disables it
	Counter tokenizer.Counter

	// Logger receives one line per outbound call; defaults to slog.Default()
	Logger *slog.Logger
}

// Relay is the provider-agnostic forwarding core. It holds no per-request
// state and is safe for concurrent use.
type Relay struct {
	providers   map[string]provider.Provider
	credentials config.CredentialSource
	client      Doer
	timeout     time.Duration
	counter     tokenizer.Counter
	logger      *slog.Logger
}

// Result is a successful relay: the provider body and the status the relay
// answers with (always 200).
type Result struct {
	StatusCode     int
	Body           json.RawMessage
	UpstreamStatus int
	Duration       time.Duration
}

// New creates a Relay over the given providers and credential source.
func New(providers map[string]provider.Provider, credentials config.CredentialSource, opts Options) *Relay {
	if opts.Client == nil {
		opts.Client = &http.Client{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Relay{
		providers:   providers,
		credentials: credentials,
		client:      opts.Client,
		timeout:     opts.Timeout,
		counter:     opts.Counter,
		logger:      opts.Logger,
	}
}

// Providers returns the registered providers keyed by id.
func (r *Relay) Providers() map[string]provider.Provider {
	return r.providers
}

// Configured reports whether a credential is currently present for id.
func (r *Relay) Configured(id string) bool {
	_, ok := r.credentials.Lookup(id)
	return ok
}

// Precheck runs the provider and credential checks Relay starts with, so a
// transport can fail on configuration before it reads the request input.
func (r *Relay) Precheck(id string) error {
	_, _, err := r.resolve(id)
	return err
}

func (r *Relay) resolve(id string) (provider.Provider, string, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, "", unknownProvider(id)
	}

	apiKey, ok := r.credentials.Lookup(id)
	if !ok {
		r.logger.Warn("provider credential missing",
			"provider", id,
			"credential", config.CredentialName(id),
		)
		return nil, "", missingCredential(id)
	}
	return p, apiKey, nil
}

// Relay performs exactly one outbound call for req. On failure the returned
// error is an *Error; no outbound call is made when the provider is unknown
// or its credential is missing.
func (r *Relay) Relay(ctx context.Context, req types.RelayRequest) (*Result, error) {
	p, apiKey, err := r.resolve(req.Provider)
	if err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	upstreamReq, err := p.NewRequest(ctx, apiKey, req.Text)
	if err != nil {
		return nil, upstreamFailure(req.Provider, err)
	}

	start := time.Now()
	resp, err := r.client.Do(upstreamReq)
	if err != nil {
		r.logger.Error("provider call failed", "provider", req.Provider, "error", err)
		return nil, upstreamFailure(req.Provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	duration := time.Since(start)
	if err != nil {
		return nil, upstreamFailure(req.Provider, err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		r.logger.Error("provider returned invalid body",
			"provider", req.Provider,
			"upstream_status", resp.StatusCode,
			"bytes", len(body),
		)
		return nil, invalidUpstream(req.Provider)
	}

	r.logger.Info("provider call",
		"provider", req.Provider,
		"upstream_status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
		"prompt_tokens", tokenizer.Estimate(r.counter, types.Prompt(req.Text)),
	)

	return &Result{
		StatusCode:     http.StatusOK,
		Body:           json.RawMessage(body),
		UpstreamStatus: resp.StatusCode,
		Duration:       duration,
	}, nil
}
