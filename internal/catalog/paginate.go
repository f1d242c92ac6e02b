package catalog

import (
	"math"

	"bookbrowser/internal/book"
)

// Page is one page of a filtered collection plus the data needed to draw
// the page selector.
type Page struct {
	TotalPages  int         `json:"total_pages"`
	PageStart   int         `json:"page_start"`
	PageEnd     int         `json:"page_end"`
	Slice       []book.Book `json:"page_slice"`
	PageNumbers []int       `json:"page_numbers"`
}

// Paginate cuts the page selected by p out of books.
//
// PageStart and PageEnd are the half-open bounds (Current-1)*PageSize and
// Current*PageSize as requested, saturating at the int limits; Slice is those
// bounds clamped to the collection. A page past the end, or a non-positive
// Current or PageSize, yields an empty Slice.
func Paginate(books []book.Book, p Pagination) Page {
	page := Page{
		Slice:       []book.Book{},
		PageNumbers: []int{},
	}
	if p.PageSize < 1 {
		return page
	}

	n := len(books)
	page.TotalPages = n / p.PageSize
	if n%p.PageSize != 0 {
		page.TotalPages++
	}
	for i := 1; i <= page.TotalPages; i++ {
		page.PageNumbers = append(page.PageNumbers, i)
	}

	page.PageEnd = mulSaturating(p.Current, p.PageSize)
	if p.Current == math.MinInt {
		page.PageStart = math.MinInt
	} else {
		page.PageStart = mulSaturating(p.Current-1, p.PageSize)
	}

	// Compare page indexes rather than offsets so nothing is multiplied
	// before the page is known to start inside the collection.
	if p.Current < 1 || n == 0 || p.Current-1 > (n-1)/p.PageSize {
		return page
	}

	start := (p.Current - 1) * p.PageSize
	end := start + min(p.PageSize, n-start)
	page.Slice = append(page.Slice, books[start:end]...)
	return page
}

// mulSaturating returns a*b for b > 0, clamped to [math.MinInt, math.MaxInt].
func mulSaturating(a, b int) int {
	switch {
	case a > math.MaxInt/b:
		return math.MaxInt
	case a < math.MinInt/b:
		return math.MinInt
	}
	return a * b
}
