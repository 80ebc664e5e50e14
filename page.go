package dotgrid

import (
	"strings"

	"github.com/ryanlewis/dotgrid/internal/contract"
	"github.com/ryanlewis/dotgrid/internal/grid"
)

// Widget is anything that can draw itself into a region of a page.
// Composition trees from package widget implement it.
//
// Draw must not write outside region; PageBuilder only guarantees that
// writes outside the page are dropped.
type Widget interface {
	Draw(pb *PageBuilder, region Region)
}

// PageBuilder accumulates writes for one page.
//
// Every write is bounds-checked against the page and silently truncated;
// there is no overflow error. All methods return the builder for chaining.
//
// A builder is single-use: Build hands its cells to the Page, after which
// further writes are ignored. The zero value is an empty builder ready
// to use.
type PageBuilder struct {
	store *grid.Store
	built bool
}

// NewPageBuilder returns a builder for a blank page.
func NewPageBuilder() *PageBuilder {
	return &PageBuilder{store: grid.New()}
}

// cells returns the builder's store, allocating it on first use. It
// returns nil once the builder has been built.
func (pb *PageBuilder) cells() *grid.Store {
	if pb.store == nil && !pb.built {
		pb.store = grid.New()
	}
	return pb.store
}

// WriteAt stores ch with style at (x, y). Runes outside ASCII 0x20..0x7E
// are stored as Placeholder.
func (pb *PageBuilder) WriteAt(x, y int, ch rune, style Style) *PageBuilder {
	if s := pb.cells(); s != nil {
		s.Write(x, y, ch, style)
	}
	return pb
}

// WriteStr writes s one rune per cell starting at (x, y) and moving right.
// Cells past the right edge are dropped; the text never wraps.
func (pb *PageBuilder) WriteStr(x, y int, s string, style Style) *PageBuilder {
	cells := pb.cells()
	if cells == nil || y < 0 || y >= PageHeight {
		return pb
	}
	col := x
	for _, r := range s {
		if col >= PageWidth {
			break
		}
		cells.Write(col, y, r, style)
		col++
	}
	return pb
}

// FillRegion writes ch with style to every cell of region.
func (pb *PageBuilder) FillRegion(region Region, ch rune, style Style) *PageBuilder {
	return pb.FillRect(region.Rect(), ch, style)
}

// FillRect writes ch with style to every cell of r that lies on the page.
func (pb *PageBuilder) FillRect(r Rect, ch rune, style Style) *PageBuilder {
	if s := pb.cells(); s != nil {
		s.Fill(r.X, r.Y, r.Width, r.Height, ch, style)
	}
	return pb
}

// RenderWidget lets w draw itself into region.
func (pb *PageBuilder) RenderWidget(region Region, w Widget) *PageBuilder {
	if w != nil && pb.cells() != nil {
		w.Draw(pb, region)
	}
	return pb
}

// Cell returns the cell currently stored at (x, y).
func (pb *PageBuilder) Cell(x, y int) (Cell, bool) {
	s := pb.cells()
	if s == nil {
		return Cell{}, false
	}
	return s.Read(x, y)
}

// Build freezes the written cells into a Page.
//
// Calling Build twice on the same builder violates a development-time
// contract. Release builds return a blank page for the second call.
func (pb *PageBuilder) Build() *Page {
	contract.Assertf(!pb.built, "PageBuilder.Build called twice")
	if pb.built {
		return &Page{store: grid.New()}
	}
	p := &Page{store: pb.cells()}
	pb.built = true
	pb.store = nil
	return p
}

// Page is one frozen 160 x 51 grid. Pages are immutable and safe for
// concurrent use.
type Page struct {
	store *grid.Store
}

// BlankPage returns a page with every cell empty.
func BlankPage() *Page {
	return &Page{store: grid.New()}
}

// Cell returns the cell at (x, y), or false if the coordinates are off the page.
func (p *Page) Cell(x, y int) (Cell, bool) {
	return p.store.Read(x, y)
}

// Row returns the characters of row y, always PageWidth long, without
// attributes. Out-of-range rows return "".
func (p *Page) Row(y int) string {
	if y < 0 || y >= PageHeight {
		return ""
	}
	row := p.store.Row(y)
	var b [PageWidth]byte
	for i, c := range row {
		b[i] = c.Char
	}
	return string(b[:])
}

// String returns the page as PageHeight newline-separated rows.
// It is meant for previews and test assertions.
func (p *Page) String() string {
	var sb strings.Builder
	sb.Grow(PageHeight * (PageWidth + 1))
	for y := 0; y < PageHeight; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.Row(y))
	}
	return sb.String()
}

// Equal reports whether p and other hold identical cells.
func (p *Page) Equal(other *Page) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.store.Equal(other.store)
}
