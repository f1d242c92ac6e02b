package commands

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookbrowser/internal/book"
	"bookbrowser/internal/catalog"
	"bookbrowser/internal/testutil"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSampleData(t *testing.T) string {
	t.Helper()
	raw, err := book.Encode(testutil.SampleBooks)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(p, raw, 0o644))
	return p
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line    string
		want    catalog.Action
		wantErr bool
	}{
		{line: "keyword 論", want: catalog.ChangeKeyword{Keyword: "論"}},
		{line: "keyword", want: catalog.ChangeKeyword{Keyword: ""}},
		{line: "category 社會科學", want: catalog.ChangeCategory{Category: "社會科學"}},
		{line: "page 3", want: catalog.ChangeCurrentPage{Current: 3}},
		{line: "page-size 6", want: catalog.ChangePageSize{PageSize: 6}},
		{line: "sortby price", want: catalog.Unrecognized{Kind: "sortby"}},
		{line: "category 小說", wantErr: true},
		{line: "page 0", wantErr: true},
		{line: "page x", wantErr: true},
		{line: "page-size 5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScript_SkipsCommentsAndReportsLine(t *testing.T) {
	actions, err := parseScript(strings.NewReader("# setup\n\nkeyword 論\npage 2\n"))
	require.NoError(t, err)
	assert.Len(t, actions, 2)

	_, err = parseScript(strings.NewReader("keyword a\npage nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestListCommand(t *testing.T) {
	data := writeSampleData(t)

	out, err := run(t, "", "list", "--data", data, "--category", "社會科學")
	require.NoError(t, err)
	assert.Contains(t, out, "社會契約論")
	assert.Contains(t, out, "論自由")
	assert.NotContains(t, out, "國富論")
	assert.Contains(t, out, "頁: [1]")
	assert.Contains(t, out, "共 2 本")
}

func TestListCommand_OutOfRangePage(t *testing.T) {
	data := writeSampleData(t)

	out, err := run(t, "", "list", "--data", data, "--page", "9")
	require.NoError(t, err)
	assert.NotContains(t, out, "國富論")
	assert.Contains(t, out, "頁: 1 2")
}

func TestListCommand_MaxIntPage(t *testing.T) {
	data := writeSampleData(t)

	out, err := run(t, "", "list", "--data", data, "--page", "9223372036854775807")
	require.NoError(t, err)
	assert.NotContains(t, out, "國富論")
	assert.Contains(t, out, "頁: 1 2")
}

func TestReplayCommand_MaxIntPageThenPageSize(t *testing.T) {
	data := writeSampleData(t)

	out, err := run(t, "page 9223372036854775807\npage-size 4\nkeyword 論\n", "replay", "--data", data, "-")
	require.NoError(t, err)
	last := out[strings.LastIndex(out, "#3"):]
	assert.Contains(t, last, "頁: [1]")
	assert.Contains(t, last, "國富論")
}

func TestListCommand_RejectsBadFlags(t *testing.T) {
	_, err := run(t, "", "list", "--page-size", "3")
	assert.Error(t, err)

	_, err = run(t, "", "list", "--category", "小說")
	assert.Error(t, err)
}

func TestReplayCommand_Stdin(t *testing.T) {
	data := writeSampleData(t)

	out, err := run(t, "page 2\nkeyword 論\nunknown-verb\n", "replay", "--data", data, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "#1 change-current-page")
	assert.Contains(t, out, "#2 change-keyword")
	assert.Contains(t, out, "#3 unknown-verb")
	// keyword resets to the first page
	last := out[strings.LastIndex(out, "#3"):]
	assert.Contains(t, last, "頁: [1] 2")
}

func TestOptionsCommand(t *testing.T) {
	out, err := run(t, "", "options")
	require.NoError(t, err)
	assert.Contains(t, out, book.CategoryAll)
	assert.Contains(t, out, "[2 4 6]")
}

func TestGenerateBooks(t *testing.T) {
	log, _ := test.NewNullLogger()
	books := generateBooks(rand.New(rand.NewSource(1)), 50, log)
	require.Len(t, books, 50)

	for _, b := range books {
		assert.NotEmpty(t, b.Title)
		assert.True(t, book.IsCategory(b.Category))
		assert.NotEqual(t, book.CategoryAll, b.Category)
	}

	again := generateBooks(rand.New(rand.NewSource(1)), 50, log)
	assert.Equal(t, books, again)
}

func TestSeedCommand_WritesLoadableDataset(t *testing.T) {
	p := filepath.Join(t.TempDir(), "seed.json")

	_, err := run(t, "", "seed", "--count", "12", "--seed", "42", "--out", p)
	require.NoError(t, err)

	d, err := book.LoadDataset(p)
	require.NoError(t, err)
	assert.Equal(t, 12, d.Len())

	out, err := run(t, "", "list", "--data", p, "--page-size", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "頁: [1] 2")
}

func TestSeedCommand_Stdout(t *testing.T) {
	out, err := run(t, "", "seed", "--count", "3", "--seed", "7")
	require.NoError(t, err)

	d, err := book.Decode([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
}
