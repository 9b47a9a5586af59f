package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehak-2/packpal-app-be/internal/middleware"
)

// readingHandler drains the body the way a JSON-decoding handler would, so
// the MaxBytesReader path is actually exercised.
var readingHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, err := io.ReadAll(r.Body); err != nil {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestMaxBodySize_WithinLimit(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(100)(readingHandler)

	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(strings.Repeat("x", 50)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMaxBodySize_DeclaredTooLarge(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(100)(readingHandler)

	// A Content-Length over the limit is rejected before any body byte is read.
	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(strings.Repeat("x", 200)))
	req.ContentLength = 200
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestMaxBodySize_StreamingTooLarge(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(100)(readingHandler)

	// Without a Content-Length the MaxBytesReader fails the read mid-stream.
	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(strings.Repeat("x", 200)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
