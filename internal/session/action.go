package session

import (
	"bookbrowser/internal/catalog"
	"bookbrowser/internal/httpx"
)

// ActionRequest is the wire form of a catalog action. Only the payload field
// belonging to Type is read.
type ActionRequest struct {
	Type     string  `json:"type"`
	Keyword  *string `json:"keyword,omitempty"`
	Category *string `json:"category,omitempty"`
	Current  *int    `json:"current,omitempty"`
	PageSize *int    `json:"page_size,omitempty"`
}

type keywordPayload struct {
	Keyword string `validate:"max=200"`
}

type categoryPayload struct {
	Category string `validate:"required,category"`
}

type currentPagePayload struct {
	Current int `validate:"gte=1"`
}

type pageSizePayload struct {
	PageSize int `validate:"page_size"`
}

// ToAction validates the payload and converts it to a catalog action. An
// unknown Type becomes catalog.Unrecognized and is never a validation error.
func (req ActionRequest) ToAction() (catalog.Action, []httpx.ErrorDetail) {
	switch req.Type {
	case catalog.TypeChangeKeyword:
		if req.Keyword == nil {
			return nil, missing("keyword")
		}
		if details := httpx.ValidateStruct(keywordPayload{Keyword: *req.Keyword}); details != nil {
			return nil, details
		}
		return catalog.ChangeKeyword{Keyword: *req.Keyword}, nil
	case catalog.TypeChangeCategory:
		if req.Category == nil {
			return nil, missing("category")
		}
		if details := httpx.ValidateStruct(categoryPayload{Category: *req.Category}); details != nil {
			return nil, details
		}
		return catalog.ChangeCategory{Category: *req.Category}, nil
	case catalog.TypeChangeCurrentPage:
		if req.Current == nil {
			return nil, missing("current")
		}
		if details := httpx.ValidateStruct(currentPagePayload{Current: *req.Current}); details != nil {
			return nil, details
		}
		return catalog.ChangeCurrentPage{Current: *req.Current}, nil
	case catalog.TypeChangePageSize:
		if req.PageSize == nil {
			return nil, missing("page_size")
		}
		if details := httpx.ValidateStruct(pageSizePayload{PageSize: *req.PageSize}); details != nil {
			return nil, details
		}
		return catalog.ChangePageSize{PageSize: *req.PageSize}, nil
	default:
		return catalog.Unrecognized{Kind: req.Type}, nil
	}
}

func missing(field string) []httpx.ErrorDetail {
	return []httpx.ErrorDetail{{Field: field, Message: field + " is required"}}
}
