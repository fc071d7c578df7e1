package relay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/mandalnilabja/cliprelay/internal/types"
)

// maxRequestBody caps the POST body accepted from clients.
const maxRequestBody = 1 << 20

// DecodeQuery reads the GET encoding: provider from the path, text from the
// query string.
func DecodeQuery(r *http.Request) types.RelayRequest {
	return types.RelayRequest{
		Provider: r.PathValue("provider"),
		Text:     r.URL.Query().Get("text"),
	}
}

// DecodeBody reads the POST encoding. JSON is the contract; form-encoded
// bodies are accepted for plain HTML forms. An empty body yields empty text.
// A body that is not exactly one JSON document, or a form that fails to
// parse, is an error.
func DecodeBody(w http.ResponseWriter, r *http.Request) (types.RelayRequest, error) {
	req := types.RelayRequest{Provider: r.PathValue("provider")}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxRequestBody); err != nil {
			return req, fmt.Errorf("parse multipart form: %w", err)
		}
		req.Text = r.PostFormValue("text")
		return req, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return req, fmt.Errorf("parse form: %w", err)
		}
		req.Text = r.PostFormValue("text")
		return req, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return req, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return req, nil
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return req, fmt.Errorf("decode body: %w", err)
	}
	req.Text = body.Text
	return req, nil
}
