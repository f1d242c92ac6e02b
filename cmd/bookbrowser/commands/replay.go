package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bookbrowser/internal/book"
	"bookbrowser/internal/catalog"

	"github.com/spf13/cobra"
)

func newReplayCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file|->",
		Short: "Apply a script of actions and print the view after each step",
		Long: `Each non-empty line is one action:

  keyword <text>
  category <name>
  page <n>
  page-size <n>

Lines starting with # are ignored. Unknown verbs leave the state unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd)
			if err != nil {
				return err
			}
			dataset, err := flags.dataset()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			actions, err := parseScript(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			c := catalog.NewController(dataset)
			for i, a := range actions {
				if u, ok := a.(catalog.Unrecognized); ok {
					log.WithField("verb", u.Kind).Debug("unrecognized action ignored")
				}
				c.Dispatch(a)
				fmt.Fprintf(out, "#%d %s\n", i+1, a.Type())
				renderView(out, c.State(), c.View())
			}
			return nil
		},
	}
}

// parseScript reads one action per line.
func parseScript(r io.Reader) ([]catalog.Action, error) {
	var actions []catalog.Action
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		actions = append(actions, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return actions, nil
}

func parseLine(line string) (catalog.Action, error) {
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "keyword":
		return catalog.ChangeKeyword{Keyword: arg}, nil
	case "category":
		if !book.IsCategory(arg) {
			return nil, fmt.Errorf("unknown category %q", arg)
		}
		return catalog.ChangeCategory{Category: arg}, nil
	case "page":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("page %q: want a positive integer", arg)
		}
		return catalog.ChangeCurrentPage{Current: n}, nil
	case "page-size":
		n, err := strconv.Atoi(arg)
		if err != nil || !book.IsPageSize(n) {
			return nil, fmt.Errorf("page-size %q: want one of %v", arg, book.PageSizes())
		}
		return catalog.ChangePageSize{PageSize: n}, nil
	default:
		return catalog.Unrecognized{Kind: verb}, nil
	}
}
