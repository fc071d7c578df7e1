// Package tokenizer estimates prompt sizes for relay logging.
//
// Neither Gemini nor Grok publish a local tokenizer, so counts use the
// cl100k_base BPE as an approximation. They are only ever logged.
package tokenizer

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/pkoukk/tiktoken-go"
)

// ErrNotReady is returned by CountTokens until Warm has loaded the encoding.
var ErrNotReady = errors.New("tokenizer encoding not loaded")

// Counter estimates the token count of a prompt.
type Counter interface {
	CountTokens(text string) (int, error)
}

// EncodingCL100kBase is the BPE used for every provider.
const EncodingCL100kBase = "cl100k_base"

// TiktokenCounter implements Counter using tiktoken-go. Counting never
// loads the encoding; only Warm does, and counts fail with ErrNotReady
// until it has succeeded.
type TiktokenCounter struct {
	encoding     string
	loadEncoding func(name string) (*tiktoken.Tiktoken, error)

	once  sync.Once
	ready atomic.Bool
	enc   *tiktoken.Tiktoken
	err   error
}

// New creates a TiktokenCounter for the cl100k_base encoding.
func New() *TiktokenCounter {
	return &TiktokenCounter{
		encoding:     EncodingCL100kBase,
		loadEncoding: tiktoken.GetEncoding,
	}
}

// Warm loads the encoding. tiktoken fetches BPE ranks over the network
// unless TIKTOKEN_CACHE_DIR already holds them, so call it off the
// request path.
func (t *TiktokenCounter) Warm() error {
	t.once.Do(func() {
		t.enc, t.err = t.loadEncoding(t.encoding)
		if t.err == nil {
			t.ready.Store(true)
		}
	})
	return t.err
}

// Ready reports whether counts are available.
func (t *TiktokenCounter) Ready() bool {
	return t.ready.Load()
}

// CountTokens counts tokens in text. It never blocks on Warm.
func (t *TiktokenCounter) CountTokens(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	if !t.ready.Load() {
		return 0, ErrNotReady
	}
	return len(t.enc.Encode(text, nil, nil)), nil
}

// Estimate returns c's count for text, or -1 when c is nil or fails.
func Estimate(c Counter, text string) int {
	if c == nil {
		return -1
	}
	n, err := c.CountTokens(text)
	if err != nil {
		return -1
	}
	return n
}
