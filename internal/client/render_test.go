package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, EmptyResponse},
		{"empty string", "", EmptyResponse},
		{"empty bytes", []byte("  "), EmptyResponse},
		{"object", map[string]any{"error": "GEMINI_API_KEY não configurada"}, "{\n  \"error\": \"GEMINI_API_KEY não configurada\"\n}"},
		{"json string keeps key order", `{"b":1,"a":[true]}`, "{\n  \"b\": 1,\n  \"a\": [\n    true\n  ]\n}"},
		{"raw json bytes", json.RawMessage(`{"foo":"bar"}`), "{\n  \"foo\": \"bar\"\n}"},
		{"body keeps key order", []byte(`{"z":0,"a":1}`), "{\n  \"z\": 0,\n  \"a\": 1\n}"},
		{"plain text falls back", "Bad Gateway", "Bad Gateway"},
		{"non-json body falls back", []byte("upstream exploded"), "upstream exploded"},
		{"no html escaping", map[string]string{"t": "<b>&</b>"}, "{\n  \"t\": \"<b>&</b>\"\n}"},
		{"body holding a json string is parsed again", []byte(`"{\"a\":1}"`), "{\n  \"a\": 1\n}"},
		{"body holding plain string", []byte(`"pronto"`), "pronto"},
		{"body null", []byte("null"), EmptyResponse},
		{"body false", []byte("false"), EmptyResponse},
		{"body zero", []byte("0"), EmptyResponse},
		{"body empty string", []byte(`""`), EmptyResponse},
		{"body true", []byte("true"), "true"},
		{"body number", []byte("42"), "42"},
		{"go false", false, EmptyResponse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(tc.in))
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	obj := map[string]any{
		"candidates": []any{map[string]any{"text": "0-15s"}},
		"usage":      map[string]any{"total": 12},
	}

	first := Render(obj)
	second := Render(obj)

	assert.Equal(t, first, second)
	assert.Equal(t, map[string]any{"total": 12}, obj["usage"], "input must not be mutated")

	raw := []byte(`{"x":1}`)
	assert.Equal(t, Render(raw), Render(raw))
	assert.Equal(t, `{"x":1}`, string(raw))
}
