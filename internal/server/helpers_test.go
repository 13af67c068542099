package server

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_NaNIsEncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, map[string]float64{"gain": math.NaN()})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"encode_failed"`)
}

func TestWriteJSONWithETag_NotModified(t *testing.T) {
	data := map[string]int{"version": 3}

	first := httptest.NewRecorder()
	WriteJSONWithETag(first, httptest.NewRequest(http.MethodGet, "/", nil), data)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.True(t, strings.HasPrefix(etag, `"`) && strings.HasSuffix(etag, `"`))
	assert.Len(t, etag, 34)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", etag)
	second := httptest.NewRecorder()
	WriteJSONWithETag(second, req, data)
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", etag)
	third := httptest.NewRecorder()
	WriteJSONWithETag(third, req, map[string]int{"version": 4})
	assert.Equal(t, http.StatusOK, third.Code)
	assert.NotEqual(t, etag, third.Header().Get("ETag"))
}

func TestEtagMatches(t *testing.T) {
	etag := `"abc"`
	assert.False(t, etagMatches("", etag))
	assert.True(t, etagMatches(`"abc"`, etag))
	assert.True(t, etagMatches(`W/"abc"`, etag))
	assert.True(t, etagMatches(`"x", "abc"`, etag))
	assert.True(t, etagMatches("*", etag))
	assert.False(t, etagMatches(`"abd"`, etag))
}

func TestRequireMethod(t *testing.T) {
	rec := httptest.NewRecorder()
	ok := RequireMethod(rec, httptest.NewRequest(http.MethodDelete, "/", nil), http.MethodGet, http.MethodHead)
	assert.False(t, ok)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		AccountID int64 `json:"accountId"`
	}

	rec := httptest.NewRecorder()
	assert.True(t, DecodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", nil), &v), "empty body is allowed")

	rec = httptest.NewRecorder()
	assert.True(t, DecodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"accountId":7}`)), &v))
	assert.Equal(t, int64(7), v.AccountID)

	rec = httptest.NewRecorder()
	assert.False(t, DecodeJSON(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)), &v))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPathParam(t *testing.T) {
	r := httptest.NewRequest(http.MethodPut, "/api/state/portfolio", nil)
	assert.Equal(t, "portfolio", PathParam(r, "/api/state/", ""))

	r = httptest.NewRequest(http.MethodGet, "/api/charts/trend.png", nil)
	assert.Equal(t, "trend.png", PathParam(r, "/api/charts/", ""))

	r = httptest.NewRequest(http.MethodGet, "/other", nil)
	assert.Equal(t, "", PathParam(r, "/api/state/", ""))
}
