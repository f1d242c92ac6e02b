package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"

	"bookbrowser/internal/book"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SampleBooks is a small dataset with both categories represented.
var SampleBooks = []book.Book{
	{Title: "社會契約論", Price: 280, Category: book.CategorySocialScience, PublishedAt: "1762-04-01"},
	{Title: "國富論", Price: 650, Category: book.CategoryBusiness, PublishedAt: "1776-03-09"},
	{Title: "論自由", Price: 250, Category: book.CategorySocialScience, PublishedAt: "1859-01-01"},
}

// SampleDataset wraps SampleBooks in a Dataset.
func SampleDataset() book.Dataset {
	return book.NewDataset(SampleBooks)
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body any) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
