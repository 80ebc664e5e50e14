package dotgrid

import (
	"io"

	"github.com/ryanlewis/dotgrid/internal/debug"
	"github.com/ryanlewis/dotgrid/internal/escp"
	"github.com/ryanlewis/dotgrid/internal/grid"
)

// Option configures encoding.
type Option func(*options)

type options struct {
	debug *debug.Session
}

// WithDebug traces the encode through session. A nil session disables
// tracing. Tracing never changes the encoded bytes.
func WithDebug(session *debug.Session) Option {
	return func(opts *options) {
		opts.debug = session
	}
}

func defaultOptions() *options {
	return &options{}
}

func (o *options) toInternal() *escp.Options {
	return &escp.Options{Debug: o.debug}
}

// InitSequence returns the bytes that start every document: ESC @ (reset)
// followed by SI (condensed pitch, so 160 columns fit a line).
func InitSequence() []byte {
	return escp.Init()
}

// Render encodes the document into a new byte slice.
//
// The stream is the initialization sequence followed, for every page in
// order, by 51 rows (160 cells each, attribute changes inline, all
// attributes off again and CR LF at the end of each row) and one FF. An
// empty document encodes to the initialization sequence alone.
//
// Equal documents always produce identical bytes.
func (d *Document) Render(opts ...Option) []byte {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	size := len(escp.Reset) + len(escp.Condensed) + len(d.pages)*(PageHeight*(PageWidth+2)+1)
	return escp.AppendDocument(make([]byte, 0, size), d.stores(), o.toInternal())
}

// RenderTo writes the encoded document to w.
func (d *Document) RenderTo(w io.Writer, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	_, err := escp.Encode(w, d.stores(), o.toInternal())
	return err
}

// WriteTo writes the encoded document to w and returns the number of bytes
// written. It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return escp.Encode(w, d.stores(), nil)
}

// Render encodes the page body: its rows and the trailing FF, without the
// initialization sequence. A document's stream equals InitSequence followed
// by the Render output of each of its pages.
func (p *Page) Render() []byte {
	return escp.AppendPage(nil, p.store)
}

func (d *Document) stores() []*grid.Store {
	out := make([]*grid.Store, len(d.pages))
	for i, p := range d.pages {
		out[i] = p.store
	}
	return out
}
