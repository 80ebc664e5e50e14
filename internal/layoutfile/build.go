package layoutfile

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ryanlewis/dotgrid"
	"github.com/ryanlewis/dotgrid/internal/debug"
	"github.com/ryanlewis/dotgrid/widget"
)

// Option configures Build.
type Option func(*options)

type options struct {
	debug *debug.Session
}

// WithDebug traces composition and rendering through session.
func WithDebug(session *debug.Session) Option {
	return func(o *options) {
		o.debug = session
	}
}

// Build composes and renders every page. The first invalid or rejected
// item stops the build.
func (f *File) Build(opts ...Option) (*dotgrid.Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	db := dotgrid.NewDocumentBuilder()
	for i, p := range f.Pages {
		root := widget.NewRect(dotgrid.PageWidth, dotgrid.PageHeight)
		if err := f.attach(root, p.Items, fmt.Sprintf("pages[%d].items", i), &o); err != nil {
			return nil, err
		}
		pb := dotgrid.NewPageBuilder()
		widget.Render(pb, root, 0, 0, widget.WithDebug(o.debug))
		db.AddPage(pb.Build())
	}
	return db.Build(), nil
}

func (f *File) attach(parent *widget.Node, items []Item, path string, o *options) error {
	for i := range items {
		it := &items[i]
		p := fmt.Sprintf("%s[%d]", path, i)

		node, err := f.node(it)
		if err != nil {
			return &ItemError{Path: p, Kind: err}
		}
		if err := parent.AddChild(node, it.X, it.Y); err != nil {
			reject(o.debug, err)
			return &ItemError{Path: p, Kind: err}
		}
		if len(it.Items) > 0 {
			if node.Width() == 0 || node.Height() == 0 {
				return &ItemError{Path: p, Kind: ErrInvalidItem, Detail: "container with nested items needs a width and height"}
			}
			if err := f.attach(node, it.Items, p+".items", o); err != nil {
				return err
			}
		}
	}
	return nil
}

// node builds the widget for one item, without its nested items.
func (f *File) node(it *Item) (*widget.Node, error) {
	style, err := parseStyle(it.Style)
	if err != nil {
		return nil, err
	}

	var n *widget.Node
	switch it.Type {
	case "text":
		text := f.text(it.Text)
		width := it.Width
		if width == 0 {
			width = utf8.RuneCountInString(text)
		}
		n, err = widget.NewLabel(width, text, dotgrid.StyleNone)
	case "label":
		n, err = widget.NewLabel(it.Width, f.text(it.Text), dotgrid.StyleNone)
	case "fill":
		if utf8.RuneCountInString(it.Char) != 1 {
			return nil, fmt.Errorf("%w: char must be a single character, got %q", ErrInvalidItem, it.Char)
		}
		ch, _ := utf8.DecodeRuneInString(f.text(it.Char))
		n = widget.New(it.Width, it.Height, fill(ch))
	case "box":
		n = widget.NewBox(it.Width, it.Height, f.text(it.Title))
	case "rect":
		if it.Width <= 0 || it.Height <= 0 {
			return nil, fmt.Errorf("%w: rect needs a positive size, got %dx%d", ErrInvalidItem, it.Width, it.Height)
		}
		n = widget.NewRect(it.Width, it.Height)
	case "paragraph":
		n = widget.NewParagraph(it.Width, it.Height, f.text(it.Text), dotgrid.StyleNone)
	case "textblock":
		n = widget.NewTextBlock(it.Width, it.Height, f.texts(it.Lines), dotgrid.StyleNone)
	case "table":
		cols := make([]widget.TableColumn, len(it.Columns))
		for i, c := range it.Columns {
			cols[i] = widget.TableColumn{Name: f.text(c.Name), Width: c.Width}
		}
		rows := make([][]string, len(it.Rows))
		for i, r := range it.Rows {
			rows[i] = f.texts(r)
		}
		n = widget.NewTable(it.Width, it.Height, cols, rows)
	case "keyvalue":
		pairs := make([]widget.KeyValue, len(it.Pairs))
		for i, kv := range it.Pairs {
			pairs[i] = widget.KeyValue{Key: f.text(kv.Key), Value: f.text(kv.Value)}
		}
		n = widget.NewKeyValueList(it.Width, it.Height, pairs, f.text(it.Separator))
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownType, it.Type)
	}
	if err != nil {
		return nil, err
	}
	return n.SetStyle(style), nil
}

func (f *File) text(s string) string {
	if f.Fold {
		return dotgrid.FoldASCII(s)
	}
	return s
}

func (f *File) texts(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = f.text(s)
	}
	return out
}

func parseStyle(names []string) (dotgrid.Style, error) {
	var s dotgrid.Style
	for _, name := range names {
		switch name {
		case "bold":
			s |= dotgrid.StyleBold
		case "underline":
			s |= dotgrid.StyleUnderline
		default:
			return 0, fmt.Errorf("%w: unknown style %q", ErrInvalidItem, name)
		}
	}
	return s, nil
}

// fill draws one character over the whole node.
type fill rune

func (f fill) Draw(ctx *widget.Context) {
	b := ctx.Bounds()
	ctx.Fill(0, 0, b.Width, b.Height, rune(f), dotgrid.StyleNone)
}

// reject traces a composition failure.
func reject(dbg *debug.Session, err error) {
	var ce *widget.CompositionError
	if dbg == nil || !errors.As(err, &ce) {
		return
	}
	dbg.Emit("compose", "Reject", debug.CompositionRejectData{
		Reason: ce.Kind.Error(),
		Parent: [2]int{ce.Parent.Width, ce.Parent.Height},
		Child:  [4]int{ce.Child.X, ce.Child.Y, ce.Child.Width, ce.Child.Height},
	})
}
