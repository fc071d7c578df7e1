package provider

import (
	"sort"

	"github.com/mandalnilabja/cliprelay/internal/config"
	"github.com/mandalnilabja/cliprelay/internal/provider/gemini"
	"github.com/mandalnilabja/cliprelay/internal/provider/grok"
	"github.com/mandalnilabja/cliprelay/internal/types"
)

// NewProviders returns a map of all available providers.
// The map key is the provider identifier used in routing.
func NewProviders(settings map[string]config.ProviderSettings) map[string]Provider {
	g := settings[types.ProviderGemini]
	x := settings[types.ProviderGrok]
	return map[string]Provider{
		types.ProviderGemini: gemini.New(g.BaseURL, g.Model),
		types.ProviderGrok:   grok.New(x.BaseURL, x.Model),
	}
}

// Names returns the registered provider ids in sorted order.
func Names(providers map[string]Provider) []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
