package infra

import (
	"net/http"
	"time"

	"github.com/mandalnilabja/cliprelay/internal/config"
	"github.com/mandalnilabja/cliprelay/internal/provider"
	"github.com/mandalnilabja/cliprelay/internal/transport/http/handler/shared"
	"github.com/mandalnilabja/cliprelay/internal/version"
)

// RootStatus returns JSON status and version information. Mounted at / when
// the web UI is disabled.
func (h *Handlers) RootStatus(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, map[string]any{
		"name":      "cliprelay",
		"version":   version.Version,
		"status":    "running",
		"api":       "/api/{provider}",
		"providers": provider.Names(h.Relay.Providers()),
	}, http.StatusOK)
}

// HealthCheck handler returns the application health status.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, map[string]any{
		"status":         "active",
		"app":            "cliprelay",
		"uptime_seconds": int64(time.Since(h.StartTime).Seconds()),
	}, http.StatusOK)
}

// providerInfo describes one relay endpoint without revealing its key.
type providerInfo struct {
	ID         string `json:"id"`
	Endpoint   string `json:"endpoint"`
	Credential string `json:"credential"`
	Configured bool   `json:"configured"`
}

// ListProviders handles GET /api/providers.
func (h *Handlers) ListProviders(w http.ResponseWriter, r *http.Request) {
	providers := h.Relay.Providers()
	out := make([]providerInfo, 0, len(providers))
	for _, id := range provider.Names(providers) {
		out = append(out, providerInfo{
			ID:         id,
			Endpoint:   "/api/" + id,
			Credential: config.CredentialName(id),
			Configured: h.Relay.Configured(id),
		})
	}
	shared.WriteJSON(w, map[string]any{"providers": out}, http.StatusOK)
}
