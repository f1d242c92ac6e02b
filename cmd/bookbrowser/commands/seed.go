package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"bookbrowser/internal/book"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSeedCommand(flags *globalFlags) *cobra.Command {
	var (
		count int
		out   string
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic book dataset usable with --data or BOOKS_FILE",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative")
			}
			log, err := flags.logger(cmd)
			if err != nil {
				return err
			}

			books := generateBooks(rand.New(rand.NewSource(seed)), count, log)
			raw, err := book.Encode(books)
			if err != nil {
				return fmt.Errorf("encode books: %w", err)
			}
			raw = append(raw, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			log.WithFields(logrus.Fields{"books": len(books), "file": out}).Info("dataset written")
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1000, "number of books to generate")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout when empty)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	return cmd
}

// generateBooks builds count synthetic books spread over the selectable
// categories.
func generateBooks(rng *rand.Rand, count int, log logrus.FieldLogger) []book.Book {
	cats := book.Categories()[1:]
	books := make([]book.Book, 0, count)
	for i := 0; i < count; i++ {
		year := 1950 + rng.Intn(75)
		books = append(books, book.Book{
			Title:       fmt.Sprintf("%s之書 第%d卷", randomWord(rng), i+1),
			Price:       float64(150 + rng.Intn(850)),
			Category:    cats[rng.Intn(len(cats))],
			PublishedAt: fmt.Sprintf("%d-%02d-01", year, 1+rng.Intn(12)),
		})

		if (i+1)%1000 == 0 {
			log.WithField("generated", i+1).Debugf("generated %d/%d books", i+1, count)
		}
	}
	return books
}

func randomWord(rng *rand.Rand) string {
	words := []string{
		"冒險", "謎團", "旅程", "發現", "秘密", "夢想", "希望",
		"戰爭", "和平", "科學", "自然", "技術", "歷史", "未來",
		"現實", "想像", "智慧", "生命", "光明", "世界", "時間", "心靈",
	}
	return words[rng.Intn(len(words))]
}
