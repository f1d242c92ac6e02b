package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))

	JSONSuccess(w, r, map[string]string{"key": "value"}, map[string]any{"total": 10})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	meta := body["meta"].(map[string]any)
	assert.Equal(t, "req-1", meta["request_id"])
	assert.Equal(t, float64(10), meta["total"])
}

func TestJSONSuccess_NoMeta(t *testing.T) {
	w := httptest.NewRecorder()

	JSONSuccess(w, httptest.NewRequest(http.MethodGet, "/", nil), []int{1}, nil)

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	_, hasMeta := body["meta"]
	assert.False(t, hasMeta)
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	details := []ErrorDetail{{Field: "page_size", Message: "page_size must be one of 2, 4, 6"}}

	JSONError(w, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, details, resp.Error.Details)
}

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"type":"change-keyword","keyword":"Go"}`))

	var dst struct {
		Type    string `json:"type"`
		Keyword string `json:"keyword"`
	}
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "change-keyword", dst.Type)
	assert.Equal(t, "Go", dst.Keyword)
}

func TestRecoveryMiddleware(t *testing.T) {
	log, hook := test.NewNullLogger()
	handler := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }),
		RequestIDMiddleware,
		AccessLogMiddleware(log),
		RecoveryMiddleware(log),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/explode", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var levels []logrus.Level
	for _, e := range hook.AllEntries() {
		levels = append(levels, e.Level)
	}
	assert.Contains(t, levels, logrus.ErrorLevel)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "access", last.Message)
	assert.Equal(t, http.StatusInternalServerError, last.Data["status"])
	assert.Equal(t, "/explode", last.Data["path"])
}
