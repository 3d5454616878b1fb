package ui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nrql2dql/internal/convert"
	"nrql2dql/internal/mappings"
)

func newTestUI() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(convert.New(mappings.Default(), logger))

	r := chi.NewRouter()
	r.Route("/ui", func(r chi.Router) {
		MountRoutes(r, h)
	})
	return r
}

func TestPlayground_RendersForm(t *testing.T) {
	router := newTestUI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "Playground")
	assert.Contains(t, body, "<textarea")
	assert.Contains(t, body, `action="/ui/convert"`)
}

func TestPlayground_ExamplePrefillsTextarea(t *testing.T) {
	router := newTestUI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui?example=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SELECT count(*) FROM Transaction SINCE 1 hour ago")
}

func TestPlayground_OutOfRangeExampleIgnored(t *testing.T) {
	router := newTestUI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui?example=99", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "SELECT count(*) FROM Transaction SINCE 1 hour ago")
}

func TestConvertSubmit_ShowsResult(t *testing.T) {
	router := newTestUI()

	form := url.Values{}
	form.Set("query", "SELECT count(*) FROM Transaction SINCE 1 hour ago")
	req := httptest.NewRequest(http.MethodPost, "/ui/convert", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "timeseries builtin:service.response.time, from:now()-1h")
	assert.Contains(t, body, "summarize count()")
	assert.Contains(t, body, "confidence: high")
	assert.Contains(t, body, "type: metrics")
}

func TestConvertSubmit_EmptyQueryShowsBlankForm(t *testing.T) {
	router := newTestUI()

	form := url.Values{}
	form.Set("query", "   ")
	req := httptest.NewRequest(http.MethodPost, "/ui/convert", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Convert a query to see the result.")
}

func TestReference_RendersMappingTables(t *testing.T) {
	router := newTestUI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui/reference", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "uniqueCount")
	assert.Contains(t, body, "countDistinct")
	assert.Contains(t, body, "Transaction")
	assert.Contains(t, body, "builtin:service.response.time")
	assert.Contains(t, body, "manual conversion required")
}

func TestStaticAssets_Served(t *testing.T) {
	router := newTestUI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ui/static/app.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".app-shell")
}
