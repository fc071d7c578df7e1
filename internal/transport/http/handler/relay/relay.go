// Package relay exposes the relay operation over HTTP. GET and POST are two
// wire encodings of the same call; both end in Handlers.serve.
package relay

import (
	"log/slog"
	"net/http"

	"github.com/mandalnilabja/cliprelay/internal/relay"
	"github.com/mandalnilabja/cliprelay/internal/transport/http/middleware"
	"github.com/mandalnilabja/cliprelay/internal/types"
)

// Handlers holds the dependencies for relay HTTP handlers.
type Handlers struct {
	Relay  *relay.Relay
	Logger *slog.Logger
}

// New creates a new instance of relay handlers.
func New(r *relay.Relay, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{Relay: r, Logger: logger}
}

// Get handles GET /api/{provider}?text=...
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, DecodeQuery(r))
}

// Post handles POST /api/{provider} with a JSON body {"text": "..."}.
// Provider and credential errors win over a malformed body.
func (h *Handlers) Post(w http.ResponseWriter, r *http.Request) {
	if err := h.Relay.Precheck(r.PathValue("provider")); err != nil {
		h.fail(w, r, r.PathValue("provider"), err)
		return
	}

	req, err := DecodeBody(w, r)
	if err != nil {
		h.Logger.Debug("rejecting relay body",
			"provider", req.Provider,
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		types.WriteError(w, http.StatusBadRequest, types.MsgInvalidBody)
		return
	}
	h.serve(w, r, req)
}

func (h *Handlers) serve(w http.ResponseWriter, r *http.Request, req types.RelayRequest) {
	res, err := h.Relay.Relay(r.Context(), req)
	if err != nil {
		h.fail(w, r, req.Provider, err)
		return
	}
	types.WriteRaw(w, res.StatusCode, res.Body)
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, provider string, err error) {
	h.Logger.Info("relay failed",
		"provider", provider,
		"error", err,
		"request_id", middleware.GetRequestID(r.Context()),
	)
	types.WriteError(w, relay.StatusOf(err), err.Error())
}
