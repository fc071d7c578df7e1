// Package web provides the embedded browser client.
package web

import "embed"

// FS contains index.html and the static/ assets (css, js).
//
//go:embed index.html static
var FS embed.FS
