package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookbrowser/internal/config"
	"bookbrowser/internal/httpx"
	"bookbrowser/internal/session"
	"bookbrowser/internal/testutil"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	log, _ := test.NewNullLogger()
	dataset := testutil.SampleDataset()
	sessions := session.NewService(session.NewMemoryRepo(time.Hour), dataset, log)
	rl := httpx.NewRateLimitMiddleware(1000, 1000, log)
	t.Cleanup(rl.Stop)
	cfg := config.Config{MaxBodyBytes: 1 << 20}
	return newRouter(dataset, sessions, cfg, log, rl)
}

func TestV1Routing(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health", http.MethodGet, "/healthz", http.StatusOK},
		{"options", http.MethodGet, "/v1/catalog/options", http.StatusOK},
		{"browse", http.MethodGet, "/v1/catalog/books?page=1", http.StatusOK},
		{"unknown session", http.MethodGet, "/v1/sessions/nope", http.StatusNotFound},
		{"wrong method", http.MethodPut, "/v1/catalog/books", http.StatusMethodNotAllowed},
		{"unversioned path", http.MethodGet, "/books", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		})
	}
}

func TestSessionFlow(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/v1/sessions", nil))
	created := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusCreated, created.Code)
	id := created.Body["data"].(map[string]any)["id"].(string)

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/v1/sessions/"+id+"/actions",
		map[string]any{"type": "change-category", "category": "社會科學"}))
	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	view := resp.Body["data"].(map[string]any)["view"].(map[string]any)
	assert.Len(t, view["filtered_books"], 2)
	assert.Equal(t, float64(1), view["total_pages"])

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, testutil.NewRequest(http.MethodDelete, "/v1/sessions/"+id, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/v1/sessions/"+id, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
