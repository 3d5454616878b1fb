package ui

import (
	"net/http"
	"strconv"
	"strings"

	"nrql2dql/internal/mappings"
)

// Playground renders the converter form. An example query can be
// preselected with ?example=N (1-based).
func (h *Handler) Playground(w http.ResponseWriter, r *http.Request) {
	queryText := ""
	if raw := r.URL.Query().Get("example"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(exampleQueries) {
			queryText = exampleQueries[n-1]
		}
	}
	renderHTML(w, http.StatusOK, playgroundPage(queryText, nil))
}

// ConvertSubmit handles the playground form post and re-renders the
// page with the conversion result.
func (h *Handler) ConvertSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, playgroundPage("", nil))
		return
	}
	queryText := r.FormValue("query")
	if strings.TrimSpace(queryText) == "" {
		renderHTML(w, http.StatusOK, playgroundPage("", nil))
		return
	}

	result := h.converter.Convert(queryText)
	renderHTML(w, http.StatusOK, playgroundPage(queryText, &result))
}

// Reference renders the active mapping tables.
func (h *Handler) Reference(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, referencePage(h.converter.Tables().Snapshot(), mappings.Operators()))
}
