package book

import (
	"errors"
	"slices"
)

// ErrInvalidDataset is returned when a dataset entry is missing required fields.
var ErrInvalidDataset = errors.New("invalid book dataset")

// Book represents a catalog entry. Books are values and are never mutated
// once the dataset is loaded.
type Book struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	PublishedAt string  `json:"published_at"`
}

// Category labels offered by the category selector.
const (
	CategoryAll           = "全部分類"
	CategorySocialScience = "社會科學"
	CategoryBusiness      = "商業理財"
)

var categories = []string{CategoryAll, CategorySocialScience, CategoryBusiness}

// Allowed rows-per-page values.
var pageSizes = []int{2, 4, 6}

// DefaultPageSize is the page size a fresh query starts with.
const DefaultPageSize = 2

// Categories returns the selectable categories in selector order, ALL first.
func Categories() []string {
	return slices.Clone(categories)
}

// IsCategory reports whether c is one of the selectable categories.
func IsCategory(c string) bool {
	return slices.Contains(categories, c)
}

// PageSizes returns the allowed page sizes in ascending order.
func PageSizes() []int {
	return slices.Clone(pageSizes)
}

// IsPageSize reports whether n is an allowed page size.
func IsPageSize(n int) bool {
	return slices.Contains(pageSizes, n)
}
