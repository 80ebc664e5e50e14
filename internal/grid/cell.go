package grid

// Placeholder replaces any rune outside the printable range.
const Placeholder = '?'

// Printable range of the printer's character set (ASCII 0x20..0x7E).
const (
	FirstPrintable = 0x20
	LastPrintable  = 0x7E
)

// Cell is one grid position: a printable character and its attributes.
// Cells are plain values; they have no identity beyond their position.
type Cell struct {
	Char  byte
	Style Style
}

// Empty is the unoccupied sentinel. It encodes as a space with no attributes.
var Empty = Cell{Char: ' ', Style: StyleNone}

// IsPrintable reports whether r can be stored in a cell as-is.
func IsPrintable(r rune) bool {
	return r >= FirstPrintable && r <= LastPrintable
}

// NewCell creates a cell, substituting Placeholder for runes outside the
// printable range and dropping reserved style bits.
func NewCell(r rune, style Style) Cell {
	ch := byte(Placeholder)
	if IsPrintable(r) {
		ch = byte(r)
	}
	return Cell{Char: ch, Style: style.Normalize()}
}

// Rune returns the cell character as a rune.
func (c Cell) Rune() rune {
	return rune(c.Char)
}

// IsEmpty reports whether the cell still holds the sentinel.
func (c Cell) IsEmpty() bool {
	return c == Empty
}
