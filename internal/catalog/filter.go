package catalog

import (
	"strings"

	"bookbrowser/internal/book"
)

// FilterBooks returns the books matching s's category and keyword, in
// dataset order. The input is never modified and the result never aliases it.
//
// Both checks are plain case-sensitive substring containment: a category
// label matches any book category that contains it, and the keyword matches
// any title that contains it. An empty keyword matches every title.
func FilterBooks(books []book.Book, s QueryState) []book.Book {
	out := make([]book.Book, 0, len(books))
	for _, b := range books {
		if !matchesCategory(b, s.Category) {
			continue
		}
		if !strings.Contains(b.Title, s.Keyword) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesCategory(b book.Book, category string) bool {
	if category == book.CategoryAll {
		return true
	}
	return strings.Contains(b.Category, category)
}
