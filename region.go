package dotgrid

// Region is a validated rectangle that lies entirely on the page:
// all components are non-negative, x+width <= PageWidth and
// y+height <= PageHeight. Zero width or height is valid and covers nothing.
//
// Region is a plain value. The zero Region is the empty rectangle at the
// origin.
type Region struct {
	rect Rect
}

// NewRegion validates and returns the region (x, y, width, height).
// It fails with ErrRegionOutOfBounds when any component is negative or the
// rectangle extends past the page.
func NewRegion(x, y, width, height int) (Region, error) {
	r := Rect{X: x, Y: y, Width: width, Height: height}
	if !onPage(r) {
		return Region{}, &GeometryError{Kind: ErrRegionOutOfBounds, Op: "NewRegion", Rect: r}
	}
	return Region{rect: r}, nil
}

// MustRegion is like NewRegion but panics on error.
// It is intended for fixed layouts known to be valid.
func MustRegion(x, y, width, height int) Region {
	reg, err := NewRegion(x, y, width, height)
	if err != nil {
		panic(err)
	}
	return reg
}

// FullPage returns the region covering the whole page.
func FullPage() Region {
	return Region{rect: Rect{Width: PageWidth, Height: PageHeight}}
}

// onPage checks the Region invariant without overflowing.
func onPage(r Rect) bool {
	if r.X < 0 || r.Y < 0 || r.Width < 0 || r.Height < 0 {
		return false
	}
	return r.X <= PageWidth-r.Width && r.Y <= PageHeight-r.Height
}

func (r Region) X() int      { return r.rect.X }
func (r Region) Y() int      { return r.rect.Y }
func (r Region) Width() int  { return r.rect.Width }
func (r Region) Height() int { return r.rect.Height }

// Right returns the exclusive right edge.
func (r Region) Right() int { return r.rect.X + r.rect.Width }

// Bottom returns the exclusive bottom edge.
func (r Region) Bottom() int { return r.rect.Y + r.rect.Height }

// Rect returns the region as an unvalidated Rect.
func (r Region) Rect() Rect { return r.rect }

// IsEmpty reports whether the region covers no cells.
func (r Region) IsEmpty() bool { return r.rect.IsEmpty() }

// Contains reports whether the cell (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool { return r.rect.Contains(x, y) }

// ContainsRegion reports whether other lies entirely inside r.
func (r Region) ContainsRegion(other Region) bool { return r.rect.ContainsRect(other.rect) }

func (r Region) String() string { return r.rect.String() }

// SplitVertical cuts the region horizontally into a top part of height
// topHeight and a bottom part holding the rest. The two parts tile r exactly.
// It fails with ErrInvalidSplit when topHeight is negative or exceeds the
// region's height.
func (r Region) SplitVertical(topHeight int) (top, bottom Region, err error) {
	if topHeight < 0 || topHeight > r.rect.Height {
		return Region{}, Region{}, &GeometryError{Kind: ErrInvalidSplit, Op: "SplitVertical", Rect: r.rect, Value: topHeight}
	}
	top = Region{rect: Rect{X: r.rect.X, Y: r.rect.Y, Width: r.rect.Width, Height: topHeight}}
	bottom = Region{rect: Rect{X: r.rect.X, Y: r.rect.Y + topHeight, Width: r.rect.Width, Height: r.rect.Height - topHeight}}
	return top, bottom, nil
}

// SplitHorizontal cuts the region vertically into a left part of width
// leftWidth and a right part holding the rest. The two parts tile r exactly.
// It fails with ErrInvalidSplit when leftWidth is negative or exceeds the
// region's width.
func (r Region) SplitHorizontal(leftWidth int) (left, right Region, err error) {
	if leftWidth < 0 || leftWidth > r.rect.Width {
		return Region{}, Region{}, &GeometryError{Kind: ErrInvalidSplit, Op: "SplitHorizontal", Rect: r.rect, Value: leftWidth}
	}
	left = Region{rect: Rect{X: r.rect.X, Y: r.rect.Y, Width: leftWidth, Height: r.rect.Height}}
	right = Region{rect: Rect{X: r.rect.X + leftWidth, Y: r.rect.Y, Width: r.rect.Width - leftWidth, Height: r.rect.Height}}
	return left, right, nil
}

// WithPadding returns the interior left after insetting each edge.
// It fails with ErrInvalidDimensions when a padding is negative or the
// paddings add up to more than the region's size. A zero-size interior is
// valid.
func (r Region) WithPadding(top, right, bottom, left int) (Region, error) {
	fail := func(v int) (Region, error) {
		return Region{}, &GeometryError{Kind: ErrInvalidDimensions, Op: "WithPadding", Rect: r.rect, Value: v}
	}
	for _, p := range [...]int{top, right, bottom, left} {
		if p < 0 {
			return fail(p)
		}
	}
	// Compare one side at a time so large paddings cannot wrap around.
	if left > r.rect.Width {
		return fail(left)
	}
	if right > r.rect.Width-left {
		return fail(right)
	}
	if top > r.rect.Height {
		return fail(top)
	}
	if bottom > r.rect.Height-top {
		return fail(bottom)
	}
	return Region{rect: Rect{
		X:      r.rect.X + left,
		Y:      r.rect.Y + top,
		Width:  r.rect.Width - left - right,
		Height: r.rect.Height - top - bottom,
	}}, nil
}

// Intersect returns the overlap of r and other. The result is always a
// valid region, possibly empty.
func (r Region) Intersect(other Region) Region {
	return Region{rect: r.rect.Intersect(other.rect)}
}

// Intersect returns the overlap of a and b.
func Intersect(a, b Region) Region {
	return a.Intersect(b)
}
