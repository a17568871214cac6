package mdwriter_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bjaus/mdwriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types ---

type basicRow struct {
	Name  string
	Email string
}

func (r basicRow) Row() []string { return []string{r.Name, r.Email} }

type headedRow struct {
	basicRow
}

func (r headedRow) Header() []string { return []string{"name", "email"} }

// --- Helpers ---

func newWriter(t *testing.T, opts ...mdwriter.Option) *mdwriter.Writer {
	t.Helper()
	w, err := mdwriter.New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

var people = mdwriter.Table{
	mdwriter.Pairs("name", "Peter", "email", "peter@forret.com"),
	mdwriter.Pairs("name", "John", "email", "john@forret.com"),
}

// ============================================================
// Tests
// ============================================================

// --- Linkify ---

func TestLinkify(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"empty": {
			input: "",
			want:  "",
		},
		"no links": {
			input: "just some text, nothing to see",
			want:  "just some text, nothing to see",
		},
		"https": {
			input: "this is a https://www.google.com link",
			want:  "this is a [www.google.com](https://www.google.com) link",
		},
		"http with query": {
			input: "see http://example.com/a?b=c&d=e:f%20 now",
			want:  "see [example.com/a?b=c&d=e:f%20](http://example.com/a?b=c&d=e:f%20) now",
		},
		"ftp stops at ampersand": {
			input: "ftp://files.example.com/a?x=1&y=2",
			want:  "[files.example.com/a?x=1](ftp://files.example.com/a?x=1)&y=2",
		},
		"ftp stops at colon": {
			input: "ftp://files.example.com:21/pub",
			want:  "[files.example.com](ftp://files.example.com):21/pub",
		},
		"emails": {
			input: "send email to peter@forret.com, test@toolstud.io, hans12@mail.first-responder.com",
			want:  "send email to [peter@forret.com](mailto:peter@forret.com), [test@toolstud.io](mailto:test@toolstud.io), [hans12@mail.first-responder.com](mailto:hans12@mail.first-responder.com)",
		},
		"surrounding punctuation": {
			input: "(https://go.dev)",
			want:  "([go.dev](https://go.dev))",
		},
		"several schemes": {
			input: "http://a.com and https://b.com",
			want:  "[a.com](http://a.com) and [b.com](https://b.com)",
		},
		"existing link": {
			input: "read [the docs](https://go.dev/doc) first",
			want:  "read [the docs](https://go.dev/doc) first",
		},
		"scheme inside url": {
			input: "http://a.com/?next=ftp://b.org",
			want:  "[a.com/?next=ftp://b.org](http://a.com/?next=ftp://b.org)",
		},
		"existing image": {
			input: "![logo](https://go.dev/logo.png)",
			want:  "![logo](https://go.dev/logo.png)",
		},
		"uppercase tld is not an email": {
			input: "user@example.COM",
			want:  "user@example.COM",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mdwriter.Linkify(tt.input))
		})
	}
}

func TestLinkifyIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"this is a https://www.google.com link",
		"mail peter@forret.com or visit http://forret.com/contact?x=1",
		"ftp://files.example.com/pub and https://a.b/c?d=e&f=g",
		"plain text",
	}
	for _, in := range inputs {
		once := mdwriter.Linkify(in)
		assert.Equal(t, once, mdwriter.Linkify(once), in)
	}
}

// --- Tables ---

func TestRenderTable(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		data        mdwriter.TabularInput
		withHeaders bool
		want        string
	}{
		"values without headers": {
			data:        mdwriter.Values("alfa", "beta"),
			withHeaders: false,
			want:        "| alfa | beta |\n|------|------|\n",
		},
		"values with headers": {
			data:        mdwriter.Values("alfa", "beta"),
			withHeaders: true,
			want:        "| 0 | 1 |\n|---|---|\n| alfa | beta |\n",
		},
		"records with headers": {
			data:        people,
			withHeaders: true,
			want:        "| name | email |\n|------|-------|\n| Peter | peter@forret.com |\n| John | john@forret.com |\n",
		},
		"records without headers": {
			data:        mdwriter.Table{mdwriter.Pairs("a", "1", "b", "2"), mdwriter.Pairs("a", "3", "b", "4")},
			withHeaders: false,
			want:        "| 1 | 2 |\n|---|---|\n| 3 | 4 |\n",
		},
		"single record": {
			data:        mdwriter.Pairs("name", "Peter"),
			withHeaders: true,
			want:        "| name |\n|------|\n| Peter |\n",
		},
		"later keys ignored": {
			data:        mdwriter.Table{mdwriter.Pairs("a", "1"), mdwriter.Pairs("zzz", "2", "y", "3")},
			withHeaders: true,
			want:        "| a |\n|---|\n| 1 |\n| 2 | 3 |\n",
		},
		"wide runes": {
			data:        mdwriter.Values("日本"),
			withHeaders: false,
			want:        "| 日本 |\n|------|\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			lines, err := mdwriter.RenderTable(tt.data, tt.withHeaders)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Join(lines, ""))
			for _, line := range lines {
				assert.True(t, strings.HasSuffix(line, "\n"))
			}
		})
	}
}

func TestRenderTableInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]mdwriter.TabularInput{
		"nil":          nil,
		"empty table":  mdwriter.Table{},
		"empty record": mdwriter.Record{},
		"empty first":  mdwriter.Table{mdwriter.Record{}, mdwriter.Pairs("a", "1")},
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := mdwriter.RenderTable(data, true)
			require.ErrorIs(t, err, mdwriter.ErrInvalidTableShape)
		})
	}
}

func TestRenderAlignedTable(t *testing.T) {
	t.Parallel()
	lines, err := mdwriter.RenderAlignedTable(people, true, mdwriter.AlignLeft, mdwriter.AlignRight)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"| name  |            email |\n",
		"|-------|-----------------:|\n",
		"| Peter | peter@forret.com |\n",
		"| John  |  john@forret.com |\n",
	}, lines)
}

func TestRenderAlignedTableCenter(t *testing.T) {
	t.Parallel()
	lines, err := mdwriter.RenderAlignedTable(mdwriter.Values("ab", "c"), false, mdwriter.AlignCenter)
	require.NoError(t, err)
	assert.Equal(t, []string{"| ab | c |\n", "|:--:|---|\n"}, lines)
}

func TestRecords(t *testing.T) {
	t.Parallel()
	table := mdwriter.Records(
		headedRow{basicRow{Name: "Peter", Email: "peter@forret.com"}},
		headedRow{basicRow{Name: "John", Email: "john@forret.com"}},
	)
	assert.Equal(t, people, table)

	plain := mdwriter.Records(basicRow{Name: "Peter", Email: "peter@forret.com"})
	assert.Equal(t, []string{"0", "1"}, plain[0].Keys())
	assert.Nil(t, mdwriter.Records[basicRow]())
}

func TestRecordsSeq(t *testing.T) {
	t.Parallel()
	items := []headedRow{
		{basicRow{Name: "Peter", Email: "peter@forret.com"}},
		{basicRow{Name: "John", Email: "john@forret.com"}},
	}
	assert.Equal(t, people, mdwriter.RecordsSeq(slices.Values(items)))
}

func TestInfer(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input any
		want  mdwriter.TabularInput
		shape mdwriter.Shape
	}{
		"strings": {
			input: []string{"alfa", "beta"},
			want:  mdwriter.Values("alfa", "beta"),
			shape: mdwriter.ShapeRow,
		},
		"scalars": {
			input: []any{"x", 2, true},
			want:  mdwriter.Values("x", "2", "true"),
			shape: mdwriter.ShapeRow,
		},
		"map sorted": {
			input: map[string]string{"name": "Peter", "email": "peter@forret.com"},
			want:  mdwriter.Pairs("email", "peter@forret.com", "name", "Peter"),
			shape: mdwriter.ShapeRow,
		},
		"any map": {
			input: map[string]any{"n": 1},
			want:  mdwriter.Pairs("n", "1"),
			shape: mdwriter.ShapeRow,
		},
		"rows of strings": {
			input: [][]string{{"a", "b"}, {"c", "d"}},
			want:  mdwriter.Table{mdwriter.Values("a", "b"), mdwriter.Values("c", "d")},
			shape: mdwriter.ShapeTable,
		},
		"maps": {
			input: []map[string]string{{"name": "Peter"}, {"name": "John"}},
			want:  mdwriter.Table{mdwriter.Pairs("name", "Peter"), mdwriter.Pairs("name", "John")},
			shape: mdwriter.ShapeTable,
		},
		"any maps": {
			input: []map[string]any{{"n": 1.5}},
			want:  mdwriter.Table{mdwriter.Pairs("n", "1.5")},
			shape: mdwriter.ShapeTable,
		},
		"records": {
			input: []mdwriter.Record{mdwriter.Pairs("a", "1")},
			want:  mdwriter.Table{mdwriter.Pairs("a", "1")},
			shape: mdwriter.ShapeTable,
		},
		"table passthrough": {
			input: people,
			want:  people,
			shape: mdwriter.ShapeTable,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := mdwriter.Infer(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.shape, got.Shape())
		})
	}
}

func TestInferInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]any{
		"nil":          nil,
		"int":          42,
		"empty slice":  []string{},
		"empty maps":   []map[string]string{},
		"nested value": []any{[]string{"x"}},
		"nested map":   map[string]any{"k": map[string]string{}},
		"empty first":  []map[string]string{{}},
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := mdwriter.Infer(input)
			require.ErrorIs(t, err, mdwriter.ErrInvalidTableShape)
		})
	}
}

func TestReadCSV(t *testing.T) {
	t.Parallel()
	table, err := mdwriter.ReadCSV(strings.NewReader("name,email\nPeter,peter@forret.com\nJohn,john@forret.com\n"), true)
	require.NoError(t, err)
	assert.Equal(t, people, table)

	table, err = mdwriter.ReadCSV(strings.NewReader("a,b\nc\n"), false)
	require.NoError(t, err)
	assert.Equal(t, mdwriter.Table{mdwriter.Values("a", "b"), mdwriter.Values("c")}, table)
}

func TestReadCSVInvalid(t *testing.T) {
	t.Parallel()
	_, err := mdwriter.ReadCSV(strings.NewReader("name,email\n"), true)
	require.ErrorIs(t, err, mdwriter.ErrInvalidTableShape)

	_, err = mdwriter.ReadCSV(strings.NewReader("a,\"b\n"), false)
	require.ErrorIs(t, err, mdwriter.ErrInvalidTableShape)
}

// --- Buffer ---

func TestBufferAppend(t *testing.T) {
	t.Parallel()
	b := mdwriter.NewBuffer()
	require.NoError(t, b.Append("one "))
	require.NoError(t, b.Append(""))
	require.NoError(t, b.Append("two"))
	assert.Equal(t, "one two", b.String())
	assert.Equal(t, 7, b.Len())

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "one two", out.String())
}

func TestBufferSinkCreatesDirectories(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "a", "b", "c", "doc.md")
	b := mdwriter.NewBuffer()
	require.NoError(t, b.BindSink(path))
	assert.Equal(t, path, b.SinkPath())
	require.NoError(t, b.Append("# title\n"))
	require.NoError(t, b.Append("body\n"))
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	assert.Equal(t, b.String(), readFile(t, path))
	assert.Empty(t, b.SinkPath())
}

func TestBufferResetClosesSink(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "doc.md")
	b := mdwriter.NewBuffer()
	require.NoError(t, b.BindSink(path))
	require.NoError(t, b.Append("before"))
	require.NoError(t, b.Reset())
	assert.Empty(t, b.String())
	assert.Empty(t, b.SinkPath())

	require.NoError(t, b.Append("after"))
	assert.Equal(t, "after", b.String())
	assert.Equal(t, "before", readFile(t, path))
}

func TestBufferRebindTruncates(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	first := filepath.Join(dir, "first.md")
	second := filepath.Join(dir, "second.md")
	require.NoError(t, os.WriteFile(second, []byte("stale content"), 0o644))

	b := mdwriter.NewBuffer()
	require.NoError(t, b.BindSink(first))
	require.NoError(t, b.Append("1"))
	require.NoError(t, b.BindSink(second))
	require.NoError(t, b.Append("2"))
	require.NoError(t, b.Close())

	assert.Equal(t, "1", readFile(t, first))
	assert.Equal(t, "2", readFile(t, second))
	assert.Equal(t, "12", b.String())
}

func TestBufferSinkOpenFailure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	b := mdwriter.NewBuffer()
	err := b.BindSink(filepath.Join(blocker, "doc.md"))
	require.ErrorIs(t, err, mdwriter.ErrSinkOpen)
	assert.Empty(t, b.SinkPath())
}

// --- Writer ---

func TestBlockEmitters(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		emit func(w *mdwriter.Writer)
		want string
	}{
		"h1":          {emit: func(w *mdwriter.Writer) { w.H1("test") }, want: "\n# test\n"},
		"h2":          {emit: func(w *mdwriter.Writer) { w.H2("test") }, want: "\n## test\n"},
		"h3":          {emit: func(w *mdwriter.Writer) { w.H3("test") }, want: "\n### test\n"},
		"h4":          {emit: func(w *mdwriter.Writer) { w.H4("test") }, want: "\n#### test\n"},
		"level 5":     {emit: func(w *mdwriter.Writer) { w.Heading(5, "test") }, want: "\n##### test\n"},
		"clamp low":   {emit: func(w *mdwriter.Writer) { w.Heading(0, "test") }, want: "\n# test\n"},
		"clamp high":  {emit: func(w *mdwriter.Writer) { w.Heading(9, "test") }, want: "\n###### test\n"},
		"not linked":  {emit: func(w *mdwriter.Writer) { w.H2("see https://go.dev") }, want: "\n## see https://go.dev\n"},
		"rule":        {emit: func(w *mdwriter.Writer) { w.Rule() }, want: "\n---\n\n"},
		"page break":  {emit: func(w *mdwriter.Writer) { w.PageBreak() }, want: "\n" + mdwriter.PageBreakMarkup + "\n\n"},
		"code":        {emit: func(w *mdwriter.Writer) { w.Code("fmt.Println(\"https://go.dev\")", "go") }, want: "\n```go\nfmt.Println(\"https://go.dev\")\n```\n"},
		"fixed":       {emit: func(w *mdwriter.Writer) { w.Fixed("x := 1") }, want: "      x := 1\n"},
		"link":        {emit: func(w *mdwriter.Writer) { w.Link("Go", "https://go.dev", true) }, want: "[Go](https://go.dev)\n"},
		"image":       {emit: func(w *mdwriter.Writer) { w.Image("logo", "img/logo.png") }, want: "![logo](img/logo.png)\n\n"},
		"raw":         {emit: func(w *mdwriter.Writer) { w.Raw("as is https://go.dev") }, want: "as is https://go.dev"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			w := newWriter(t)
			tt.emit(w)
			require.NoError(t, w.Err())
			assert.Equal(t, tt.want, w.String())
		})
	}
}

func TestProseEmitters(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		emit func(w *mdwriter.Writer)
		want string
	}{
		"paragraph": {
			emit: func(w *mdwriter.Writer) { w.Paragraph("mail peter@forret.com", false) },
			want: "mail [peter@forret.com](mailto:peter@forret.com)\n\n",
		},
		"continued": {
			emit: func(w *mdwriter.Writer) { w.Paragraph("one", true).Paragraph("two", false) },
			want: "one\ntwo\n\n",
		},
		"italic": {
			emit: func(w *mdwriter.Writer) { w.Italic("  soft  ", false) },
			want: "*soft*\n\n",
		},
		"bold": {
			emit: func(w *mdwriter.Writer) { w.Bold("see https://go.dev", true) },
			want: "**see [go.dev](https://go.dev)**\n",
		},
		"bullet": {
			emit: func(w *mdwriter.Writer) { w.Bullet("top", 0).Bullet("nested", 2) },
			want: "* top\n      * nested\n",
		},
		"bullets": {
			emit: func(w *mdwriter.Writer) { w.Bullets([]string{"a", "b"}, 1) },
			want: "   * a\n   * b\n",
		},
		"check": {
			emit: func(w *mdwriter.Writer) { w.Check("done", true, 0).Check("todo", false, 1) },
			want: "* [x] done\n   * [ ] todo\n",
		},
		"numbered": {
			emit: func(w *mdwriter.Writer) { w.Numbered(1, "first", 0).Numbered(2, "ftp://x.org", 1) },
			want: "1. first\n   2. [x.org](ftp://x.org)\n",
		},
		"blockquote": {
			emit: func(w *mdwriter.Writer) { w.Blockquote("line one\n\nline two", false) },
			want: "> line one\n>\n> line two\n\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			w := newWriter(t)
			tt.emit(w)
			require.NoError(t, w.Err())
			assert.Equal(t, tt.want, w.String())
		})
	}
}

func TestWithLinkifyDisabled(t *testing.T) {
	t.Parallel()
	w := newWriter(t, mdwriter.WithLinkify(false))
	w.Paragraph("see https://go.dev", false)
	assert.Equal(t, "see https://go.dev\n\n", w.Markdown())
}

func TestWriterTable(t *testing.T) {
	t.Parallel()
	w := newWriter(t)
	w.Table(mdwriter.Values("alfa", "beta"), false)
	require.NoError(t, w.Err())
	assert.Equal(t, "| alfa | beta |\n|------|------|\n", w.String())

	w.Reset().Table(people, true)
	require.NoError(t, w.Err())
	assert.Equal(t, "| name | email |\n|------|-------|\n| Peter | peter@forret.com |\n| John | john@forret.com |\n", w.String())

	w.Reset().AlignedTable(mdwriter.Values("a", "bbb"), false)
	require.NoError(t, w.Err())
	assert.Equal(t, "| a | bbb |\n|---|-----|\n", w.String())
}

func TestWriterStickyError(t *testing.T) {
	t.Parallel()
	w := newWriter(t)
	w.Paragraph("before", false).
		Table(mdwriter.Table{}, true).
		Paragraph("after", false).
		H1("ignored")
	require.ErrorIs(t, w.Err(), mdwriter.ErrInvalidTableShape)
	assert.Equal(t, "before\n\n", w.String())
	require.ErrorIs(t, w.Close(), mdwriter.ErrInvalidTableShape)

	w.Reset().Paragraph("fresh", false)
	require.NoError(t, w.Err())
	assert.Equal(t, "fresh\n\n", w.String())
}

func TestWriterOutput(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "doc.md")
	w, err := mdwriter.New(mdwriter.WithOutput(path))
	require.NoError(t, err)
	w.H1("Title").Paragraph("body", false)
	require.NoError(t, w.Close())
	assert.Equal(t, "\n# Title\nbody\n\n", readFile(t, path))
	assert.Equal(t, w.String(), readFile(t, path))
}

func TestWriterResetStopsMirroring(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "doc.md")
	w := newWriter(t, mdwriter.WithOutput(path))
	w.Paragraph("kept", false).Reset()
	assert.Empty(t, w.String())
	w.Paragraph("memory only", false)
	require.NoError(t, w.Err())
	assert.Equal(t, "kept\n\n", readFile(t, path))
	assert.Equal(t, "memory only\n\n", w.String())
}

func TestWriterSetOutput(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "late", "doc.md")
	w := newWriter(t)
	w.Paragraph("unmirrored", false).SetOutput(path).Paragraph("mirrored", false)
	require.NoError(t, w.Close())
	assert.Equal(t, "mirrored\n\n", readFile(t, path))
	assert.Equal(t, "unmirrored\n\nmirrored\n\n", w.String())
}

func TestWriterOutputFailure(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := mdwriter.New(mdwriter.WithOutput(filepath.Join(blocker, "doc.md")))
	require.ErrorIs(t, err, mdwriter.ErrSinkOpen)

	w := newWriter(t)
	w.SetOutput(filepath.Join(blocker, "doc.md")).Paragraph("dropped", false)
	require.ErrorIs(t, w.Err(), mdwriter.ErrSinkOpen)
	assert.Empty(t, w.String())
}

func TestWithLogger(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	dir := t.TempDir()

	w := newWriter(t, mdwriter.WithLogger(logger), mdwriter.WithOutput(filepath.Join(dir, "doc.md")))
	w.Paragraph("x", false)
	require.NoError(t, w.SaveAsRaw(filepath.Join(dir, "copy.md")))
	require.NoError(t, w.Close())

	out := logs.String()
	assert.Contains(t, out, "sink bound")
	assert.Contains(t, out, "exported")
	assert.Contains(t, out, "format=markdown")
	assert.Contains(t, out, "sink closed")
}

func TestMetadata(t *testing.T) {
	t.Parallel()
	w := newWriter(t, mdwriter.WithMetadata(mdwriter.Metadata{Subject: "ops"}))
	w.SetTitle("Report").SetAuthor("Peter").SetKeywords("weekly", "ops")
	assert.Equal(t, mdwriter.Metadata{
		Title:    "Report",
		Author:   "Peter",
		Subject:  "ops",
		Keywords: []string{"weekly", "ops"},
	}, w.Metadata())

	w.Reset()
	assert.Equal(t, "Report", w.Metadata().Title)
}

// --- Data emitters ---

func TestFrontMatter(t *testing.T) {
	t.Parallel()
	w := newWriter(t)
	w.SetTitle("Report").SetAuthor("Peter").FrontMatter(nil)
	require.NoError(t, w.Err())
	assert.Equal(t, "---\ntitle: Report\nauthor: Peter\n---\n", w.String())

	w.Reset().FrontMatter(map[string]int{"draft": 1})
	assert.Equal(t, "---\ndraft: 1\n---\n", w.String())
}

func TestDataBlocks(t *testing.T) {
	t.Parallel()
	w := newWriter(t)
	w.JSON(map[string]any{"url": "https://go.dev?a=1&b=2"})
	require.NoError(t, w.Err())
	assert.Equal(t, "\n```json\n{\n  \"url\": \"https://go.dev?a=1&b=2\"\n}\n```\n", w.String())

	w.Reset().YAML(map[string]int{"a": 1})
	require.NoError(t, w.Err())
	assert.Equal(t, "\n```yaml\na: 1\n```\n", w.String())

	w.Reset().JSON(func() {})
	require.Error(t, w.Err())
	assert.Empty(t, w.String())
}

func TestTemplate(t *testing.T) {
	t.Parallel()
	w := newWriter(t)
	w.Template("Hello {{.}}, see https://go.dev", "Gopher", false)
	require.NoError(t, w.Err())
	assert.Equal(t, "Hello Gopher, see [go.dev](https://go.dev)\n\n", w.String())

	w.Reset().Template("{{.Missing", nil, false)
	require.ErrorIs(t, w.Err(), mdwriter.ErrInvalidTemplate)

	w.Reset().Template("{{.Name}}", 42, false)
	require.Error(t, w.Err())
	assert.False(t, errors.Is(w.Err(), mdwriter.ErrInvalidTemplate))
}
