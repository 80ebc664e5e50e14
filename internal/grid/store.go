// Package grid holds the fixed-size cell store underlying every page.
//
// The store is the only mutable state during page construction. Every write
// is bounds-checked: coordinates outside the grid are silently ignored, which
// is the single truncation primitive the higher layers rely on.
package grid

// Page dimensions in character cells.
const (
	Width  = 160
	Height = 51
)

// Store is a fixed Width x Height array of cells.
// It is allocated once and never grows.
type Store struct {
	cells [Height][Width]Cell
}

// New returns a store with every cell set to Empty.
func New() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset sets every cell back to Empty.
func (s *Store) Reset() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Empty
		}
	}
}

// InBounds reports whether (x, y) addresses a cell.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Write stores ch at (x, y). Out-of-range coordinates are a no-op.
func (s *Store) Write(x, y int, ch rune, style Style) {
	if !InBounds(x, y) {
		return
	}
	s.cells[y][x] = NewCell(ch, style)
}

// Read returns the cell at (x, y), or false if the coordinates are out of range.
func (s *Store) Read(x, y int) (Cell, bool) {
	if !InBounds(x, y) {
		return Cell{}, false
	}
	return s.cells[y][x], true
}

// Fill writes ch to every cell of the rectangle (x, y, width, height).
// Each cell goes through Write, so parts outside the grid are clipped per cell.
func (s *Store) Fill(x, y, width, height int, ch rune, style Style) {
	if width <= 0 || height <= 0 {
		return
	}
	// Clamp the loop bounds to the grid; Write would drop the rest anyway.
	x0, x1 := span(x, width, Width)
	y0, y1 := span(y, height, Height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			s.Write(col, row, ch, style)
		}
	}
}

// span clamps [origin, origin+extent) to [0, limit) without overflowing.
// extent must be positive.
func span(origin, extent, limit int) (lo, hi int) {
	if origin >= limit {
		return 0, 0
	}
	lo = max(origin, 0)
	switch {
	case origin < 0:
		hi = min(origin+extent, limit)
	case extent < limit-origin:
		hi = origin + extent
	default:
		hi = limit
	}
	return lo, max(hi, lo)
}

// Row returns a copy of row y. Out-of-range rows return an all-Empty row.
func (s *Store) Row(y int) [Width]Cell {
	if y < 0 || y >= Height {
		var row [Width]Cell
		for i := range row {
			row[i] = Empty
		}
		return row
	}
	return s.cells[y]
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	c := *s
	return &c
}

// Equal reports whether both stores hold identical cells.
func (s *Store) Equal(other *Store) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.cells == other.cells
}
