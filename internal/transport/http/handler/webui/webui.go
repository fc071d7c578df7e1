// Package webui serves the browser client: one HTML page plus static assets.
package webui

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mandalnilabja/cliprelay/web"
)

// Handlers holds the rendered index page and the static asset filesystem.
type Handlers struct {
	Index  []byte
	Static fs.FS
}

// New loads the index page, from webRoot/index.html when webRoot is set or
// from the embedded copy otherwise, and augments it with the client assets.
func New(webRoot string) (*Handlers, error) {
	var (
		page []byte
		err  error
	)
	if webRoot != "" {
		page, err = os.ReadFile(filepath.Join(webRoot, "index.html"))
	} else {
		page, err = fs.ReadFile(web.FS, "index.html")
	}
	if err != nil {
		return nil, fmt.Errorf("read index page: %w", err)
	}

	index, err := Augment(page)
	if err != nil {
		return nil, fmt.Errorf("augment index page: %w", err)
	}

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}

	return &Handlers{Index: index, Static: static}, nil
}
