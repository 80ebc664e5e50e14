package dotgrid

import "github.com/ryanlewis/dotgrid/internal/contract"

// DocumentBuilder collects pages in order.
type DocumentBuilder struct {
	pages []*Page
	built bool
}

// NewDocumentBuilder returns an empty document builder.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{}
}

// AddPage appends p. Nil pages are ignored, as are pages added after Build.
func (db *DocumentBuilder) AddPage(p *Page) *DocumentBuilder {
	if p == nil || db.built {
		return db
	}
	db.pages = append(db.pages, p)
	return db
}

// Build freezes the pages into a Document. A document may have no pages.
//
// Calling Build twice on the same builder violates a development-time
// contract. Release builds return an empty document for the second call.
func (db *DocumentBuilder) Build() *Document {
	contract.Assertf(!db.built, "DocumentBuilder.Build called twice")
	if db.built {
		return &Document{}
	}
	db.built = true
	d := &Document{pages: db.pages}
	db.pages = nil
	return d
}

// Document is an immutable, ordered sequence of pages.
type Document struct {
	pages []*Page
}

// Pages returns the pages in order. The slice is a copy; the pages are shared.
func (d *Document) Pages() []*Page {
	out := make([]*Page, len(d.pages))
	copy(out, d.pages)
	return out
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Page returns page i, or nil if i is out of range.
func (d *Document) Page(i int) *Page {
	if i < 0 || i >= len(d.pages) {
		return nil
	}
	return d.pages[i]
}
