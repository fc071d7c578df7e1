// Package handler composes the HTTP handlers of the relay service.
package handler

import (
	"log/slog"
	"time"

	"github.com/mandalnilabja/cliprelay/internal/relay"
	"github.com/mandalnilabja/cliprelay/internal/transport/http/handler/infra"
	relayhandler "github.com/mandalnilabja/cliprelay/internal/transport/http/handler/relay"
	"github.com/mandalnilabja/cliprelay/internal/transport/http/handler/webui"
)

// Repo composes all domain-specific handlers.
type Repo struct {
	Relay *relayhandler.Handlers
	Infra *infra.Handlers
	WebUI *webui.Handlers // nil when the web UI is disabled
}

// NewRepo creates a new instance of the composed handler repository.
func NewRepo(r *relay.Relay, ui *webui.Handlers, logger *slog.Logger) *Repo {
	return &Repo{
		Relay: relayhandler.New(r, logger),
		Infra: infra.New(r, time.Now()),
		WebUI: ui,
	}
}
