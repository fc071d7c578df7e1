package webui

import (
	"net/http"
)

// Page serves the augmented index page (GET /{$}).
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(h.Index)
}

// StaticHandler serves the embedded assets mounted at /static/.
func (h *Handlers) StaticHandler() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(h.Static)))
}
