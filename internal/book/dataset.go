package book

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

//go:embed books.json
var embeddedBooks []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Dataset is the fixed, ordered book collection every view derives from.
// It is loaded once at startup and only ever handed out as copies.
type Dataset struct {
	books []Book
}

// NewDataset wraps books in a Dataset. The slice is copied.
func NewDataset(books []Book) Dataset {
	return Dataset{books: slices.Clone(books)}
}

// Books returns a copy of the collection in dataset order.
func (d Dataset) Books() []Book {
	return slices.Clone(d.books)
}

// Len returns the number of books in the dataset.
func (d Dataset) Len() int {
	return len(d.books)
}

// Default returns the dataset compiled into the binary.
func Default() Dataset {
	d, err := Decode(embeddedBooks)
	if err != nil {
		panic(fmt.Sprintf("embedded dataset: %v", err))
	}
	return d
}

// LoadDataset reads a JSON array of books from path. An empty path yields the
// embedded dataset.
func LoadDataset(path string) (Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	d, err := Decode(raw)
	if err != nil {
		return Dataset{}, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return d, nil
}

// Decode parses a JSON array of books and checks every entry has a title and
// a category.
func Decode(raw []byte) (Dataset, error) {
	var books []Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return Dataset{}, err
	}
	for i, b := range books {
		if b.Title == "" {
			return Dataset{}, fmt.Errorf("%w: entry %d has no title", ErrInvalidDataset, i)
		}
		if b.Category == "" {
			return Dataset{}, fmt.Errorf("%w: entry %d (%q) has no category", ErrInvalidDataset, i, b.Title)
		}
	}
	return Dataset{books: books}, nil
}

// Encode renders books as an indented JSON array accepted by Decode.
func Encode(books []Book) ([]byte, error) {
	return json.MarshalIndent(books, "", "  ")
}
