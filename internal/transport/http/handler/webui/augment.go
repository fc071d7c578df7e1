package webui

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
)

// Asset paths the client controller is served from.
const (
	ScriptPath     = "/static/js/app.js"
	StylesheetPath = "/static/css/style.css"
)

// Augment makes sure page loads the client stylesheet and script, adding
// whichever is missing. Pages that already reference them are only
// re-serialized, so Augment(Augment(p)) == Augment(p).
func Augment(page []byte) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	if doc.Find(`link[href="` + StylesheetPath + `"]`).Length() == 0 {
		doc.Find("head").AppendHtml(`<link rel="stylesheet" href="` + StylesheetPath + `"/>`)
	}
	if doc.Find(`script[src="` + ScriptPath + `"]`).Length() == 0 {
		doc.Find("body").AppendHtml(`<script src="` + ScriptPath + `" defer=""></script>`)
	}

	html, err := doc.Html()
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}
