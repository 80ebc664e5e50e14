package layoutfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ryanlewis/dotgrid"
	"github.com/ryanlewis/dotgrid/internal/debug"
	"github.com/ryanlewis/dotgrid/widget"
)

const sampleLayout = `
pages:
  - items:
      - {type: text, x: 0, y: 0, text: "ACME", style: [bold]}
      - {type: fill, x: 0, y: 1, width: 10, height: 1, char: "="}
      - type: box
        x: 0
        y: 3
        width: 20
        height: 4
        title: Notes
        items:
          - {type: paragraph, x: 1, y: 1, width: 18, height: 2, text: "hello world"}
      - {type: keyvalue, x: 30, y: 0, width: 20, height: 2, pairs: [{key: Invoice, value: "42"}]}
      - type: table
        x: 30
        y: 3
        width: 20
        height: 3
        columns: [{name: Qty, width: 5}, {name: Item, width: 10}]
        rows: [["2", "Widget"]]
  - items: []
`

func build(t *testing.T, src string, opts ...Option) (*dotgrid.Document, error) {
	t.Helper()
	f, err := Parse([]byte(src))
	require.NoError(t, err)
	return f.Build(opts...)
}

func TestBuildSample(t *testing.T) {
	doc, err := build(t, sampleLayout)
	require.NoError(t, err)
	require.Equal(t, 2, doc.PageCount())

	p := doc.Page(0)
	require.Equal(t, "ACME", p.Row(0)[:4])
	c, ok := p.Cell(0, 0)
	require.True(t, ok)
	require.Equal(t, dotgrid.StyleBold, c.Style)

	require.Equal(t, "========== ", p.Row(1)[:11])
	require.Equal(t, "+-Notes"+strings.Repeat("-", 12)+"+", p.Row(3)[:20])
	require.Equal(t, "|hello world       |", p.Row(4)[:20])
	require.Equal(t, "Invoice: 42", p.Row(0)[30:41])
	require.Equal(t, "Qty  Item      ", p.Row(3)[30:45])
	require.Equal(t, "2    Widget    ", p.Row(4)[30:45])

	require.True(t, doc.Page(1).Equal(dotgrid.BlankPage()))
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind error
		path string
	}{
		{"unknown type", `pages: [{items: [{type: circle}]}]`, ErrUnknownType, "pages[0].items[0]"},
		{"missing type", `pages: [{items: [{x: 1}]}]`, ErrUnknownType, "pages[0].items[0]"},
		{"unknown field", `pages: [{items: [{type: text, text: hi, colour: red}]}]`, ErrUnknownField, "pages[0].items[0]"},
		{"field of another type", `pages: [{items: [{type: label, width: 3, title: x}]}]`, ErrUnknownField, "pages[0].items[0]"},
		{"nested", `pages: [{items: [{type: rect, width: 5, height: 5, items: [{type: text, text: a}, {type: nope}]}]}]`, ErrUnknownType, "pages[0].items[0].items[1]"},
		{"column field", `pages: [{items: [{type: table, columns: [{name: a, wide: 3}]}]}]`, ErrUnknownField, "pages[0].items[0].columns[0]"},
		{"top level", `title: report`, ErrUnknownField, ""},
		{"items not a list", `pages: [{items: {type: text}}]`, ErrInvalidItem, "pages[0].items"},
		{"page not a mapping", `pages: [3]`, ErrInvalidItem, "pages[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			require.ErrorIs(t, err, tt.kind)
			var ie *ItemError
			require.True(t, errors.As(err, &ie))
			require.Equal(t, tt.path, ie.Path)
			require.Positive(t, ie.Line)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(nil)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]byte("pages: [{items: [{type: text, x: left}]}]"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "layoutfile:")

	_, err = Parse([]byte("pages: ["))
	require.Error(t, err)
}

func TestBuildRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind error
		path string
	}{
		{
			"overlap",
			`pages: [{items: [{type: text, x: 0, y: 0, text: abc}, {type: text, x: 2, y: 0, text: xyz}]}]`,
			widget.ErrOverlappingChildren, "pages[0].items[1]",
		},
		{
			"off the page",
			`pages: [{items: [{type: text, x: 158, y: 0, text: ABCDE}]}]`,
			widget.ErrChildExceedsParent, "pages[0].items[0]",
		},
		{
			"negative offset",
			`pages: [{items: [{type: fill, x: -1, y: 0, width: 2, height: 1, char: "#"}]}]`,
			widget.ErrOutOfBounds, "pages[0].items[0]",
		},
		{
			"nested escapes box",
			`pages: [{items: [{type: box, width: 10, height: 3, items: [{type: text, x: 1, y: 1, text: "much too long"}]}]}]`,
			widget.ErrChildExceedsParent, "pages[0].items[0].items[0]",
		},
		{
			"label too long",
			`pages: [{items: [{type: label, width: 3, text: abcd}]}]`,
			widget.ErrTextExceedsWidth, "pages[0].items[0]",
		},
		{
			"bad style",
			`pages: [{items: [{type: text, text: a, style: [italic]}]}]`,
			ErrInvalidItem, "pages[0].items[0]",
		},
		{
			"bad fill char",
			`pages: [{items: [{type: fill, width: 2, height: 1, char: "ab"}]}]`,
			ErrInvalidItem, "pages[0].items[0]",
		},
		{
			"empty rect",
			`pages: [{items: [{type: rect}]}]`,
			ErrInvalidItem, "pages[0].items[0]",
		},
		{
			"empty box with items",
			`pages: [{items: [{type: box, items: [{type: text, text: a}]}]}]`,
			ErrInvalidItem, "pages[0].items[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := build(t, tt.src)
			require.Nil(t, doc)
			require.ErrorIs(t, err, tt.kind)
			var ie *ItemError
			require.True(t, errors.As(err, &ie))
			require.Equal(t, tt.path, ie.Path)
		})
	}
}

func TestFold(t *testing.T) {
	src := `
fold: %s
pages:
  - items:
      - {type: text, text: "caf\u00e9 \u201cok\u201d"}
`
	doc, err := build(t, strings.Replace(src, "%s", "true", 1))
	require.NoError(t, err)
	require.Equal(t, `cafe "ok"`, doc.Page(0).Row(0)[:9])

	doc, err = build(t, strings.Replace(src, "%s", "false", 1))
	require.NoError(t, err)
	require.Equal(t, "caf? ?ok?", doc.Page(0).Row(0)[:9])
}

func TestEmptyPages(t *testing.T) {
	doc, err := build(t, "pages: []")
	require.NoError(t, err)
	require.Zero(t, doc.PageCount())
	require.Equal(t, dotgrid.InitSequence(), doc.Render())
}

func TestRejectTraced(t *testing.T) {
	debug.SetEnabled(true)
	defer debug.SetEnabled(false)

	var out bytes.Buffer
	session := debug.NewSession(debug.NewJSONSink(&out))
	require.NotNil(t, session)

	_, err := build(t, `pages: [{items: [{type: text, text: abc}, {type: text, x: 1, text: b}]}]`, WithDebug(session))
	require.ErrorIs(t, err, widget.ErrOverlappingChildren)
	require.NoError(t, session.Close())

	require.Contains(t, out.String(), `"event":"Reject"`)
	require.Contains(t, out.String(), `"reason":"overlapping children"`)
	require.Contains(t, out.String(), `"child":[1,0,1,1]`)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLayout), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Pages, 2)
	require.Len(t, f.Pages[0].Items, 5)
	require.Equal(t, "paragraph", f.Pages[0].Items[2].Items[0].Type)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
