package widget

// Column stacks containers top to bottom inside a fixed-size node.
type Column struct {
	node *Node
	next int
}

// NewColumn returns an empty column of the given size.
func NewColumn(width, height int) *Column {
	n := NewRect(width, height)
	n.kind = "column"
	return &Column{node: n}
}

// Node returns the column's container, for attaching it to a tree.
func (c *Column) Node() *Node { return c.node }

// Remaining returns the unused height.
func (c *Column) Remaining() int { return c.node.height - c.next }

// Area attaches a full-width container of the given height below the
// previous one and returns it. It fails with ErrInsufficientSpace when
// height is not positive or exceeds the remaining space.
func (c *Column) Area(height int) (*Node, error) {
	if height <= 0 || height > c.Remaining() {
		return nil, &CompositionError{Kind: ErrInsufficientSpace, Layout: "column", Required: height, Available: c.Remaining()}
	}
	area := NewRect(c.node.width, height)
	if err := c.node.AddChild(area, 0, c.next); err != nil {
		return nil, err
	}
	c.next += height
	return area, nil
}

// Row places containers left to right inside a fixed-size node.
type Row struct {
	node *Node
	next int
}

// NewRow returns an empty row of the given size.
func NewRow(width, height int) *Row {
	n := NewRect(width, height)
	n.kind = "row"
	return &Row{node: n}
}

// Node returns the row's container, for attaching it to a tree.
func (r *Row) Node() *Node { return r.node }

// Remaining returns the unused width.
func (r *Row) Remaining() int { return r.node.width - r.next }

// Area attaches a full-height container of the given width right of the
// previous one and returns it. It fails with ErrInsufficientSpace when
// width is not positive or exceeds the remaining space.
func (r *Row) Area(width int) (*Node, error) {
	if width <= 0 || width > r.Remaining() {
		return nil, &CompositionError{Kind: ErrInsufficientSpace, Layout: "row", Required: width, Available: r.Remaining()}
	}
	area := NewRect(width, r.node.height)
	if err := r.node.AddChild(area, r.next, 0); err != nil {
		return nil, err
	}
	r.next += width
	return area, nil
}

// Stack hands out a single container covering its whole area. Siblings may
// not overlap, so a stack holds exactly one area.
type Stack struct {
	node *Node
	used bool
}

// NewStack returns an empty stack of the given size.
func NewStack(width, height int) *Stack {
	n := NewRect(width, height)
	n.kind = "stack"
	return &Stack{node: n}
}

// Node returns the stack's container, for attaching it to a tree.
func (s *Stack) Node() *Node { return s.node }

// Area attaches and returns a container the size of the stack. A second
// call fails with ErrInsufficientSpace.
func (s *Stack) Area() (*Node, error) {
	if s.used {
		return nil, &CompositionError{Kind: ErrInsufficientSpace, Layout: "stack", Required: s.node.height, Available: 0}
	}
	area := NewRect(s.node.width, s.node.height)
	if err := s.node.AddChild(area, 0, 0); err != nil {
		return nil, err
	}
	s.used = true
	return area, nil
}
