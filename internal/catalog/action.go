package catalog

// Wire names of the recognized actions.
const (
	TypeChangeKeyword     = "change-keyword"
	TypeChangeCategory    = "change-category"
	TypeChangeCurrentPage = "change-current-page"
	TypeChangePageSize    = "change-page-size"
)

// Action is a discrete user interaction applied to a QueryState.
type Action interface {
	Type() string
}

type ChangeKeyword struct {
	Keyword string
}

type ChangeCategory struct {
	Category string
}

type ChangeCurrentPage struct {
	Current int
}

type ChangePageSize struct {
	PageSize int
}

// Unrecognized carries an action name that Transition does not handle.
// Decoders use it so unknown input still flows through as an identity step.
type Unrecognized struct {
	Kind string
}

func (ChangeKeyword) Type() string     { return TypeChangeKeyword }
func (ChangeCategory) Type() string    { return TypeChangeCategory }
func (ChangeCurrentPage) Type() string { return TypeChangeCurrentPage }
func (ChangePageSize) Type() string    { return TypeChangePageSize }
func (u Unrecognized) Type() string    { return u.Kind }

// Transition returns the state that results from applying a to s.
//
// Keyword and category changes send the user back to page 1. A page size
// change keeps the current page even when it no longer exists; the view then
// shows an empty page. Any other action leaves s unchanged.
func Transition(s QueryState, a Action) QueryState {
	switch act := a.(type) {
	case ChangeKeyword:
		s.Keyword = act.Keyword
		s.Pagination.Current = 1
	case ChangeCategory:
		s.Category = act.Category
		s.Pagination.Current = 1
	case ChangeCurrentPage:
		s.Pagination.Current = act.Current
	case ChangePageSize:
		s.Pagination.PageSize = act.PageSize
	}
	return s
}
