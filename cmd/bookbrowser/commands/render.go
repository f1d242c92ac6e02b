package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookbrowser/internal/catalog"

	"github.com/gosuri/uitable"
)

// renderView prints the current page as a table followed by the page selector.
func renderView(w io.Writer, state catalog.QueryState, view catalog.DerivedView) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("書名", "價錢", "分類", "出版日期")
	for _, b := range view.PageSlice {
		table.AddRow(b.Title, strconv.FormatFloat(b.Price, 'f', -1, 64), b.Category, b.PublishedAt)
	}
	fmt.Fprintln(w, table)
	fmt.Fprintln(w, pageSelector(state.Pagination.Current, view.PageNumbers))
	fmt.Fprintf(w, "共 %d 本, 每頁 %d 本\n", len(view.FilteredBooks), state.Pagination.PageSize)
}

// pageSelector renders page numbers with the current one bracketed.
func pageSelector(current int, numbers []int) string {
	if len(numbers) == 0 {
		return "頁: -"
	}
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		if n == current {
			parts[i] = "[" + strconv.Itoa(n) + "]"
		} else {
			parts[i] = strconv.Itoa(n)
		}
	}
	return "頁: " + strings.Join(parts, " ")
}
