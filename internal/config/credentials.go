package config

import (
	"os"
	"strings"
)

// CredentialSource resolves the API key bound to a provider id.
// Implementations are consulted on every relay invocation.
type CredentialSource interface {
	Lookup(provider string) (string, bool)
}

// CredentialName returns the environment variable holding a provider's key,
// e.g. "gemini" → "GEMINI_API_KEY".
func CredentialName(provider string) string {
	return strings.ToUpper(provider) + "_API_KEY"
}

// EnvCredentials reads provider keys from the process environment.
type EnvCredentials struct{}

// Lookup implements CredentialSource.
func (EnvCredentials) Lookup(provider string) (string, bool) {
	key := os.Getenv(CredentialName(provider))
	return key, key != ""
}

// StaticCredentials is a fixed provider → key map.
type StaticCredentials map[string]string

// Lookup implements CredentialSource.
func (s StaticCredentials) Lookup(provider string) (string, bool) {
	key, ok := s[provider]
	return key, ok && key != ""
}
