package catalog

import (
	"net/http"
	"strconv"

	"bookbrowser/internal/book"
	"bookbrowser/internal/httpx"
)

type HTTPHandler struct {
	dataset book.Dataset
}

func NewHTTPHandler(dataset book.Dataset) *HTTPHandler {
	return &HTTPHandler{dataset: dataset}
}

type browseQuery struct {
	Keyword  string `validate:"max=200"`
	Category string `validate:"required,category"`
	Page     int    `validate:"gte=1"`
	PageSize int    `validate:"page_size"`
}

// Options handles GET /v1/catalog/options
// @Summary Selector options
// @Description Categories and page sizes the browser accepts
// @Tags catalog
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/catalog/options [get]
func (h *HTTPHandler) Options(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, map[string]any{
		"categories":        book.Categories(),
		"page_sizes":        book.PageSizes(),
		"default_category":  book.CategoryAll,
		"default_page_size": book.DefaultPageSize,
	}, nil)
}

// Browse handles GET /v1/catalog/books
// @Summary Browse the catalog
// @Description Filter the catalog by keyword and category and return one page
// @Tags catalog
// @Produce json
// @Param keyword query string false "Title keyword"
// @Param category query string false "Category" default(全部分類)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(2)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /v1/catalog/books [get]
func (h *HTTPHandler) Browse(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := browseQuery{
		Keyword:  query.Get("keyword"),
		Category: query.Get("category"),
		Page:     1,
		PageSize: book.DefaultPageSize,
	}
	if q.Category == "" {
		q.Category = book.CategoryAll
	}

	var details []httpx.ErrorDetail
	if v := query.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details = append(details, httpx.ErrorDetail{Field: "page", Message: "page must be an integer"})
		}
		q.Page = n
	}
	if v := query.Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details = append(details, httpx.ErrorDetail{Field: "page_size", Message: "page_size must be an integer"})
		}
		q.PageSize = n
	}
	if details == nil {
		details = httpx.ValidateStruct(q)
	}
	if len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", details)
		return
	}

	state := QueryState{
		Keyword:    q.Keyword,
		Category:   q.Category,
		Pagination: Pagination{Current: q.Page, PageSize: q.PageSize},
	}
	view := Derive(h.dataset.Books(), state)

	httpx.JSONSuccess(w, r, view.PageSlice, map[string]any{
		"page":         q.Page,
		"page_size":    q.PageSize,
		"total":        len(view.FilteredBooks),
		"total_pages":  view.TotalPages,
		"page_numbers": view.PageNumbers,
	})
}
