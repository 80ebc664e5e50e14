// Package dotgrid builds fixed-grid pages for ESC/P dot-matrix printers and
// encodes them into a deterministic control-code stream.
//
// Every page is a 160 x 51 grid of cells. Content is placed with explicit
// coordinates and explicit sizes; anything that falls outside the grid, or
// outside the rectangle a widget was given, is silently truncated. Nothing
// is measured, wrapped or paginated automatically.
//
// Identical documents always encode to identical bytes:
//
//	pb := dotgrid.NewPageBuilder()
//	pb.WriteStr(0, 0, "INVOICE", dotgrid.StyleBold)
//	doc := dotgrid.NewDocumentBuilder().AddPage(pb.Build()).Build()
//
//	if _, err := doc.WriteTo(printer); err != nil {
//	    log.Fatal(err)
//	}
//
// Pages and documents are immutable once built and safe for concurrent use.
// Builders are not; each belongs to a single goroutine.
package dotgrid

import "github.com/ryanlewis/dotgrid/internal/grid"

// Page dimensions in character cells.
const (
	PageWidth  = grid.Width
	PageHeight = grid.Height
)

// Cell is one grid position: a printable ASCII character and its style.
type Cell = grid.Cell

// Style is a bitmask of text attributes: emphasis and underline.
type Style = grid.Style

// Attribute values.
const (
	StyleNone      = grid.StyleNone
	StyleBold      = grid.StyleBold
	StyleUnderline = grid.StyleUnderline
)

// Placeholder is stored in place of any rune outside ASCII 0x20..0x7E.
const Placeholder = grid.Placeholder

// EmptyCell is the unoccupied cell: a space with no attributes.
var EmptyCell = grid.Empty

// IsPrintable reports whether r is stored as-is rather than as Placeholder.
func IsPrintable(r rune) bool {
	return grid.IsPrintable(r)
}
