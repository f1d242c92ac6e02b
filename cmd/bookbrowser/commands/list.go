package commands

import (
	"fmt"

	"bookbrowser/internal/book"
	"bookbrowser/internal/catalog"

	"github.com/spf13/cobra"
)

func newListCommand(flags *globalFlags) *cobra.Command {
	var (
		keyword  string
		category string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of the filtered catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !book.IsCategory(category) {
				return fmt.Errorf("unknown category %q", category)
			}
			if !book.IsPageSize(pageSize) {
				return fmt.Errorf("page size must be one of %v", book.PageSizes())
			}
			if page < 1 {
				return fmt.Errorf("page must be at least 1")
			}

			dataset, err := flags.dataset()
			if err != nil {
				return err
			}

			c := catalog.NewController(dataset)
			for _, a := range []catalog.Action{
				catalog.ChangeKeyword{Keyword: keyword},
				catalog.ChangeCategory{Category: category},
				catalog.ChangePageSize{PageSize: pageSize},
				catalog.ChangeCurrentPage{Current: page},
			} {
				c.Dispatch(a)
			}

			renderView(cmd.OutOrStdout(), c.State(), c.View())
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "title substring")
	cmd.Flags().StringVarP(&category, "category", "c", book.CategoryAll, "category")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	cmd.Flags().IntVarP(&pageSize, "page-size", "s", book.DefaultPageSize, "rows per page")

	return cmd
}

func newOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the selectable categories and page sizes",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "分類:")
			for _, c := range book.Categories() {
				fmt.Fprintln(w, "  "+c)
			}
			fmt.Fprintf(w, "每頁筆數: %v (預設 %d)\n", book.PageSizes(), book.DefaultPageSize)
		},
	}
}
