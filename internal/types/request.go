// Package types holds the wire types shared by the relay, its providers and clients.
package types

import "fmt"

// Known provider identifiers.
const (
	ProviderGemini = "gemini"
	ProviderGrok   = "grok"
)

// PromptTemplate wraps user text before it is sent to a provider.
const PromptTemplate = "Resuma este texto como um corte de vídeo: %s"

// QuickSuggestion is the canned prompt behind the "quick suggestion" shortcut.
const QuickSuggestion = "Sugira até 5 trechos curtos (em segundos: inicio,fim) ideais para reels ou shorts. Seja objetivo."

// RelayRequest is one logical relay call, independent of how it arrived.
type RelayRequest struct {
	Text     string `json:"text"`
	Provider string `json:"-"`
}

// Prompt returns the text embedded in the provider prompt template.
func Prompt(text string) string {
	return fmt.Sprintf(PromptTemplate, text)
}
