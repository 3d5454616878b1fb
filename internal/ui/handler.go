// Package ui serves the web playground and mapping reference pages.
package ui

import (
	"net/http"

	"nrql2dql/internal/convert"

	gomponents "maragu.dev/gomponents"
)

// Handler renders the HTML pages.
type Handler struct {
	converter *convert.Converter
}

// NewHandler creates the UI handler around a converter.
func NewHandler(converter *convert.Converter) *Handler {
	return &Handler{converter: converter}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
