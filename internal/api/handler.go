// Package api exposes the converter over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nrql2dql/internal/convert"
	"nrql2dql/internal/mappings"
)

// maxBatchSize bounds a single batch request.
const maxBatchSize = 500

// Handler serves the conversion endpoints.
type Handler struct {
	converter *convert.Converter
	logger    *slog.Logger
}

// NewHandler creates an API handler around a converter.
func NewHandler(converter *convert.Converter, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{converter: converter, logger: logger}
}

// Register mounts the versioned API routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/convert", h.ConvertQuery)
	r.Post("/convert/batch", h.ConvertBatch)
	r.Get("/mappings", h.GetMappings)
}

type convertRequest struct {
	Query string `json:"query"`
}

type batchRequest struct {
	Queries []string `json:"queries"`
}

type batchResponse struct {
	Results interface{} `json:"results"`
}

type mappingsResponse struct {
	mappings.Snapshot
	Operators []mappings.Entry `json:"operators"`
}

// ConvertQuery translates a single NRQL query.
func (h *Handler) ConvertQuery(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close() //nolint:errcheck

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("bad convert request", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		h.writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	result := h.converter.Convert(req.Query)
	h.writeJSON(w, http.StatusOK, result)
}

// ConvertBatch translates a list of NRQL queries, preserving order.
func (h *Handler) ConvertBatch(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close() //nolint:errcheck

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("bad batch request", "error", err)
		h.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if len(req.Queries) == 0 {
		h.writeError(w, http.StatusBadRequest, "queries is required")
		return
	}
	if len(req.Queries) > maxBatchSize {
		h.writeError(w, http.StatusRequestEntityTooLarge, "too many queries in one batch")
		return
	}

	results, err := h.converter.ConvertAll(r.Context(), req.Queries, 0)
	if err != nil {
		h.logger.Warn("batch conversion aborted", "error", err)
		h.writeError(w, http.StatusInternalServerError, "batch conversion failed")
		return
	}
	h.writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

// GetMappings returns the active translation tables.
func (h *Handler) GetMappings(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, mappingsResponse{
		Snapshot:  h.converter.Tables().Snapshot(),
		Operators: mappings.Operators(),
	})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
