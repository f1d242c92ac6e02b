package catalog

import "bookbrowser/internal/book"

// Pagination selects one page of the filtered collection. Current is 1-indexed.
type Pagination struct {
	Current  int `json:"current"`
	PageSize int `json:"page_size"`
}

// QueryState is the user's current filter and pagination selection. It is
// only ever changed through Transition.
type QueryState struct {
	Keyword    string     `json:"keyword"`
	Category   string     `json:"category"`
	Pagination Pagination `json:"pagination"`
}

// NewQueryState returns the state a browsing session starts with.
func NewQueryState() QueryState {
	return QueryState{
		Keyword:  "",
		Category: book.CategoryAll,
		Pagination: Pagination{
			Current:  1,
			PageSize: book.DefaultPageSize,
		},
	}
}
