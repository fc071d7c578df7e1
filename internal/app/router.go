package app

import (
	"log/slog"
	"net/http"

	"github.com/mandalnilabja/cliprelay/internal/transport/http/handler"
	"github.com/mandalnilabja/cliprelay/internal/transport/http/middleware"
)

// RouterOptions configures the HTTP router behavior.
type RouterOptions struct {
	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router with all application routes.
// Returns an http.Handler with middleware applied.
func NewRouter(repo *handler.Repo, opts *RouterOptions) http.Handler {
	mux := http.NewServeMux()

	// Infra routes; more specific than /api/{provider}
	mux.HandleFunc("GET /api/health", repo.Infra.HealthCheck)
	mux.HandleFunc("GET /api/providers", repo.Infra.ListProviders)

	// Relay: two encodings of the same call
	mux.HandleFunc("GET /api/{provider}", repo.Relay.Get)
	mux.HandleFunc("POST /api/{provider}", repo.Relay.Post)

	if repo.WebUI != nil {
		mux.HandleFunc("GET /{$}", repo.WebUI.Page)
		mux.Handle("GET /static/", repo.WebUI.StaticHandler())
	} else {
		mux.HandleFunc("GET /{$}", repo.Infra.RootStatus)
	}

	// Apply middleware chain (order: outer to inner)
	var h http.Handler = mux

	if opts != nil && opts.Logger != nil {
		logger := opts.Logger
		h = middleware.Recover(func(r *http.Request, v any) {
			logger.Error("handler panic",
				"path", r.URL.Path,
				"panic", v,
				"request_id", middleware.GetRequestID(r.Context()),
			)
		})(h)
		h = middleware.RequestLogger(logger)(h)
	} else {
		h = middleware.Recover(nil)(h)
	}

	h = middleware.RequestID(h)
	h = middleware.CORS(h)

	return h
}
