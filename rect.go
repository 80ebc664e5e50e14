package dotgrid

import (
	"fmt"
	"math"
)

// Rect is an unvalidated rectangle in page coordinates. It may lie partly or
// entirely off the page; the composition tree uses it for absolute node
// rectangles before they are clipped.
//
// A Rect with a non-positive width or height is empty.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the exclusive right edge. It saturates instead of overflowing.
func (r Rect) Right() int {
	return addSat(r.X, r.Width)
}

// Bottom returns the exclusive bottom edge. It saturates instead of overflowing.
func (r Rect) Bottom() int {
	return addSat(r.Y, r.Height)
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of cells covered, or 0 for an empty rectangle.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Intersect returns the overlap of r and other. The origin is the larger of
// the two origins and the extent reaches the smaller of the two far edges,
// clamped to zero. A zero-extent result is valid and means nothing is visible.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	w := min(r.Right(), other.Right()) - x
	h := min(r.Bottom(), other.Bottom()) - y
	return Rect{X: x, Y: y, Width: max(w, 0), Height: max(h, 0)}
}

// Overlaps reports whether r and other share at least one cell.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r.
// An empty rectangle is contained by any rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: addSat(r.X, dx), Y: addSat(r.Y, dy), Width: r.Width, Height: r.Height}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Height, r.X, r.Y)
}

// addSat adds a and b, clamping to the int range on overflow.
func addSat(a, b int) int {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt
	case b < 0 && s > a:
		return math.MinInt
	}
	return s
}
