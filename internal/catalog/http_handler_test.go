package catalog

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"bookbrowser/internal/book"
	"bookbrowser/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_Browse(t *testing.T) {
	handler := NewHTTPHandler(book.Default())

	tests := []struct {
		name           string
		query          url.Values
		expectedStatus int
		expectedRows   int
		expectedTotal  float64
		expectedPages  float64
	}{
		{
			name:           "defaults",
			query:          url.Values{},
			expectedStatus: http.StatusOK,
			expectedRows:   2,
			expectedTotal:  7,
			expectedPages:  4,
		},
		{
			name:           "category second page",
			query:          url.Values{"category": {"社會科學"}, "page": {"2"}, "page_size": {"2"}},
			expectedStatus: http.StatusOK,
			expectedRows:   1,
			expectedTotal:  3,
			expectedPages:  2,
		},
		{
			name:           "page out of range",
			query:          url.Values{"page": {"9"}, "page_size": {"6"}},
			expectedStatus: http.StatusOK,
			expectedRows:   0,
			expectedTotal:  7,
			expectedPages:  2,
		},
		{
			name:           "max int page is an empty page",
			query:          url.Values{"page": {"9223372036854775807"}},
			expectedStatus: http.StatusOK,
			expectedRows:   0,
			expectedTotal:  7,
			expectedPages:  4,
		},
		{
			name:           "keyword with no match",
			query:          url.Values{"keyword": {"Kubernetes"}},
			expectedStatus: http.StatusOK,
			expectedRows:   0,
			expectedTotal:  0,
			expectedPages:  0,
		},
		{
			name:           "unknown category",
			query:          url.Values{"category": {"小說"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "page size not allowed",
			query:          url.Values{"page_size": {"5"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "page not a number",
			query:          url.Values{"page": {"two"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "page zero",
			query:          url.Values{"page": {"0"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/v1/catalog/books?"+tt.query.Encode(), nil)

			handler.Browse(w, r)

			resp := testutil.RecordHTTPResponse(w)
			require.Equal(t, tt.expectedStatus, resp.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Equal(t, false, resp.Body["success"])
				return
			}

			rows, _ := resp.Body["data"].([]any)
			assert.Len(t, rows, tt.expectedRows)
			meta := resp.Body["meta"].(map[string]any)
			assert.Equal(t, tt.expectedTotal, meta["total"])
			assert.Equal(t, tt.expectedPages, meta["total_pages"])
		})
	}
}

func TestHTTPHandler_Options(t *testing.T) {
	handler := NewHTTPHandler(book.Default())
	w := httptest.NewRecorder()

	handler.Options(w, httptest.NewRequest(http.MethodGet, "/v1/catalog/options", nil))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	data := resp.Body["data"].(map[string]any)
	assert.Equal(t, []any{"全部分類", "社會科學", "商業理財"}, data["categories"])
	assert.Equal(t, []any{float64(2), float64(4), float64(6)}, data["page_sizes"])
}
