package catalog

import "bookbrowser/internal/book"

// DerivedView is the read-only projection of a QueryState over the dataset.
// It is rebuilt from scratch after every transition.
type DerivedView struct {
	FilteredBooks []book.Book `json:"filtered_books"`
	TotalPages    int         `json:"total_pages"`
	PageStart     int         `json:"page_start"`
	PageEnd       int         `json:"page_end"`
	PageSlice     []book.Book `json:"page_slice"`
	PageNumbers   []int       `json:"page_numbers"`
}

// Derive filters books by s and paginates the result.
func Derive(books []book.Book, s QueryState) DerivedView {
	filtered := FilterBooks(books, s)
	page := Paginate(filtered, s.Pagination)
	return DerivedView{
		FilteredBooks: filtered,
		TotalPages:    page.TotalPages,
		PageStart:     page.PageStart,
		PageEnd:       page.PageEnd,
		PageSlice:     page.Slice,
		PageNumbers:   page.PageNumbers,
	}
}

// Controller owns one QueryState and the view derived from it. Every change
// goes through Dispatch. A Controller is not safe for concurrent use.
type Controller struct {
	dataset book.Dataset
	state   QueryState
	view    DerivedView
}

// NewController starts a controller on dataset with the default query.
func NewController(dataset book.Dataset) *Controller {
	return NewControllerWithState(dataset, NewQueryState())
}

// NewControllerWithState starts a controller on dataset with state.
func NewControllerWithState(dataset book.Dataset, state QueryState) *Controller {
	return &Controller{
		dataset: dataset,
		state:   state,
		view:    Derive(dataset.Books(), state),
	}
}

// Dispatch applies a to the current state and rebuilds the view. State and
// view are replaced together, only once both are computed.
func (c *Controller) Dispatch(a Action) {
	next := Transition(c.state, a)
	view := Derive(c.dataset.Books(), next)
	c.state, c.view = next, view
}

// State returns the current query state.
func (c *Controller) State() QueryState {
	return c.state
}

// View returns the view for the current state.
func (c *Controller) View() DerivedView {
	return c.view
}
