package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EmptyResponse is shown when there is nothing to render.
const EmptyResponse = "Resposta vazia"

// Render formats a relay payload for the result pane. Render never modifies
// its argument.
//
// A string is text the caller already holds: it is pretty-printed when it
// parses as JSON and shown as is otherwise. A []byte or json.RawMessage is
// a response body: it is decoded first, so a body that decodes to a string
// goes through the string rule, and null, false, 0 and "" render as
// EmptyResponse. A body that is not JSON is shown raw. Other values are
// encoded and then treated as a body. Object key order is preserved.
func Render(v any) string {
	switch body := v.(type) {
	case nil:
		return EmptyResponse
	case string:
		return renderString(body)
	case []byte:
		return renderBody(body)
	case json.RawMessage:
		return renderBody(body)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return renderBody(buf.Bytes())
}

func renderString(s string) string {
	if s == "" {
		return EmptyResponse
	}
	if pretty, ok := indent([]byte(s)); ok {
		return pretty
	}
	return s
}

func renderBody(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return EmptyResponse
	}

	var decoded any
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return string(raw)
	}

	switch x := decoded.(type) {
	case nil:
		return EmptyResponse
	case bool:
		if !x {
			return EmptyResponse
		}
	case float64:
		if x == 0 {
			return EmptyResponse
		}
	case string:
		return renderString(x)
	}

	pretty, _ := indent(trimmed)
	return pretty
}

// indent re-indents a JSON document without reordering keys.
func indent(raw []byte) (string, bool) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return "", false
	}
	return buf.String(), true
}
