package relay

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandalnilabja/cliprelay/internal/config"
	"github.com/mandalnilabja/cliprelay/internal/provider"
	"github.com/mandalnilabja/cliprelay/internal/tokenizer"
	"github.com/mandalnilabja/cliprelay/internal/types"
)

// countingDoer counts outbound calls before delegating.
type countingDoer struct {
	calls atomic.Int32
	next  Doer
}

func (c *countingDoer) Do(req *http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return c.next.Do(req)
}

type failingDoer struct{ err error }

func (f failingDoer) Do(*http.Request) (*http.Response, error) { return nil, f.err }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRelay points both providers at upstream.
func newTestRelay(t *testing.T, upstream string, creds config.CredentialSource) (*Relay, *countingDoer) {
	t.Helper()
	providers := provider.NewProviders(map[string]config.ProviderSettings{
		"gemini": {BaseURL: upstream},
		"grok":   {BaseURL: upstream},
	})
	doer := &countingDoer{next: http.DefaultClient}
	return New(providers, creds, Options{Client: doer, Logger: discardLogger()}), doer
}

func upstreamReturning(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRelay_MissingCredential(t *testing.T) {
	for _, id := range []string{"gemini", "grok"} {
		t.Run(id, func(t *testing.T) {
			srv := upstreamReturning(t, http.StatusOK, `{}`)
			r, doer := newTestRelay(t, srv.URL, config.StaticCredentials{})

			res, err := r.Relay(context.Background(), types.RelayRequest{Provider: id, Text: "hello"})

			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrMissingCredential)
			assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
			assert.Equal(t, config.CredentialName(id)+" não configurada", err.Error())
			assert.Zero(t, doer.calls.Load(), "no outbound call without a credential")
		})
	}
}

func TestRelay_UnknownProvider(t *testing.T) {
	srv := upstreamReturning(t, http.StatusOK, `{}`)
	r, doer := newTestRelay(t, srv.URL, config.StaticCredentials{"openai": "k"})

	_, err := r.Relay(context.Background(), types.RelayRequest{Provider: "openai", Text: "hello"})

	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	assert.Zero(t, doer.calls.Load())
}

func TestRelay_PassThroughIdentity(t *testing.T) {
	srv := upstreamReturning(t, http.StatusOK, `{"foo":"bar"}`)
	r, doer := newTestRelay(t, srv.URL, config.StaticCredentials{"gemini": "k"})

	res, err := r.Relay(context.Background(), types.RelayRequest{Provider: "gemini", Text: "hello"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, `{"foo":"bar"}`, string(res.Body))
	assert.Equal(t, int32(1), doer.calls.Load())
}

func TestRelay_ProviderErrorPassedThroughAs200(t *testing.T) {
	quota := `{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`
	srv := upstreamReturning(t, http.StatusTooManyRequests, quota)
	r, _ := newTestRelay(t, srv.URL, config.StaticCredentials{"gemini": "k"})

	res, err := r.Relay(context.Background(), types.RelayRequest{Provider: "gemini", Text: "hello"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, res.UpstreamStatus)
	assert.Equal(t, quota, string(res.Body))
}

func TestRelay_SendsTemplatedPrompt(t *testing.T) {
	var gotKey, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	r, _ := newTestRelay(t, srv.URL, config.StaticCredentials{"gemini": "secret"})
	_, err := r.Relay(context.Background(), types.RelayRequest{Provider: "gemini", Text: "hello world"})

	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)
	assert.JSONEq(t, `{"contents":[{"parts":[{"text":"Resuma este texto como um corte de vídeo: hello world"}]}]}`, gotBody)
}

func TestRelay_InvalidUpstreamBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"whitespace body", "  \n"},
		{"html error page", "<html>502 Bad Gateway</html>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := upstreamReturning(t, http.StatusBadGateway, tc.body)
			r, _ := newTestRelay(t, srv.URL, config.StaticCredentials{"grok": "k"})

			_, err := r.Relay(context.Background(), types.RelayRequest{Provider: "grok", Text: "x"})

			assert.ErrorIs(t, err, ErrInvalidUpstream)
			assert.Equal(t, http.StatusBadGateway, StatusOf(err))
			assert.Equal(t, "resposta inválida de grok", err.Error())
		})
	}
}

func TestRelay_TransportFailure(t *testing.T) {
	providers := provider.NewProviders(map[string]config.ProviderSettings{})
	r := New(providers, config.StaticCredentials{"gemini": "k"}, Options{
		Client: failingDoer{err: errors.New("dial tcp: no such host")},
		Logger: discardLogger(),
	})

	_, err := r.Relay(context.Background(), types.RelayRequest{Provider: "gemini", Text: "x"})

	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
	assert.Contains(t, err.Error(), "falha ao contatar gemini")
	assert.Contains(t, err.Error(), "no such host")
}

func TestRelay_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	providers := provider.NewProviders(map[string]config.ProviderSettings{"gemini": {BaseURL: srv.URL}})
	r := New(providers, config.StaticCredentials{"gemini": "k"}, Options{
		Timeout: 50 * time.Millisecond,
		Logger:  discardLogger(),
	})

	_, err := r.Relay(context.Background(), types.RelayRequest{Provider: "gemini", Text: "x"})

	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRelay_UnwarmedCounterDoesNotDelayResponse(t *testing.T) {
	srv := upstreamReturning(t, http.StatusOK, `{"foo":"bar"}`)
	providers := provider.NewProviders(map[string]config.ProviderSettings{"gemini": {BaseURL: srv.URL}})
	r := New(providers, config.StaticCredentials{"gemini": "k"}, Options{
		Counter: tokenizer.New(),
		Logger:  discardLogger(),
	})

	done := make(chan error, 1)
	go func() {
		res, err := r.Relay(context.Background(), types.RelayRequest{Provider: "gemini", Text: "hello"})
		if err == nil && string(res.Body) != `{"foo":"bar"}` {
			err = errors.New("unexpected body " + string(res.Body))
		}
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("relay blocked on the token counter after the upstream answered")
	}
}

func TestRelay_Precheck(t *testing.T) {
	r, doer := newTestRelay(t, "http://unused.test", config.StaticCredentials{"grok": "k", "openai": "k"})

	assert.NoError(t, r.Precheck("grok"))
	assert.ErrorIs(t, r.Precheck("gemini"), ErrMissingCredential)
	assert.ErrorIs(t, r.Precheck("openai"), ErrUnknownProvider)
	assert.Zero(t, doer.calls.Load())
}

func TestRelay_Configured(t *testing.T) {
	r, _ := newTestRelay(t, "http://unused.test", config.StaticCredentials{"grok": "k"})
	assert.True(t, r.Configured("grok"))
	assert.False(t, r.Configured("gemini"))
}

func TestStatusOf_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}
