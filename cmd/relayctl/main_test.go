package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-version"}, strings.NewReader(""), &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "relayctl") {
		t.Errorf("expected version output, got: %s", stdout.String())
	}
}

func TestRun_EmptyStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-url", "http://127.0.0.1:1"}, strings.NewReader("  \n"), &stdout, &stderr)

	if err == nil || !strings.Contains(err.Error(), "no text to send") {
		t.Fatalf("expected 'no text to send' error, got: %v", err)
	}
	if !strings.Contains(stderr.String(), "Coloque um texto") {
		t.Errorf("expected empty-text log line, got: %s", stderr.String())
	}
}

func TestRun_PostFromStdin(t *testing.T) {
	var gotMethod, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"GROK_API_KEY não configurada"}`)
	}))
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-url", srv.URL, "-provider", "grok", "-post"},
		strings.NewReader("hello\n"), &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPost || gotBody != `{"text":"hello"}` {
		t.Errorf("unexpected request: %s %s", gotMethod, gotBody)
	}
	if !strings.Contains(stdout.String(), `"error": "GROK_API_KEY não configurada"`) {
		t.Errorf("expected rendered error JSON on stdout, got: %s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "/api/grok retornou (status 500)") {
		t.Errorf("expected status log on stderr, got: %s", stderr.String())
	}
}

func TestRun_QuickSuggestionViaGET(t *testing.T) {
	var gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotText = r.URL.Query().Get("text")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-url", srv.URL, "-quick"}, strings.NewReader(""), &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(gotText, "Sugira até 5 trechos curtos") {
		t.Errorf("expected quick suggestion text, got %q", gotText)
	}
}
