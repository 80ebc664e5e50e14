// Package widget composes fixed-size content nodes into trees and renders
// them onto dotgrid pages.
//
// Every node declares its width and height when it is constructed; they
// never change. AddChild rejects children that would escape their parent
// or overlap a sibling, and leaves the tree untouched when it does.
// Rendering clips each node to the intersection of its own rectangle with
// all of its ancestors', so content can never draw outside any ancestor.
//
//	root := widget.NewRect(60, 10)
//	title, err := widget.NewLabel(20, "Summary", dotgrid.StyleBold)
//	if err != nil {
//	    return err
//	}
//	if err := root.AddChild(title, 2, 0); err != nil {
//	    return err
//	}
//	pb.RenderWidget(region, root)
package widget

import (
	"github.com/ryanlewis/dotgrid"
	"github.com/ryanlewis/dotgrid/internal/contract"
)

// Content draws a node's own cells. Implementations write through the
// Context, which drops anything outside the node's clip rectangle.
type Content interface {
	Draw(ctx *Context)
}

// Node is one element of a composition tree: a fixed-size rectangle with
// optional content and ordered, non-overlapping children.
//
// A node has at most one parent. Once attached it cannot be detached or
// moved, so a tree never contains cycles or shared nodes.
type Node struct {
	kind    string
	width   int
	height  int
	content Content

	style    dotgrid.Style
	parent   *Node
	children []child
}

type child struct {
	node *Node
	x, y int
}

// New returns a node of the given size drawing content. Negative sizes are
// treated as zero.
func New(width, height int, content Content) *Node {
	return newNode("custom", width, height, content)
}

// NewRect returns an empty container. A container must have a non-zero
// width and height; a zero-size container is a development-time contract
// violation.
func NewRect(width, height int) *Node {
	contract.Assertf(width > 0 && height > 0, "zero-size container %dx%d", width, height)
	return newNode("rect", width, height, nil)
}

func newNode(kind string, width, height int, content Content) *Node {
	return &Node{
		kind:    kind,
		width:   max(width, 0),
		height:  max(height, 0),
		content: content,
	}
}

// Width returns the declared width.
func (n *Node) Width() int { return n.width }

// Height returns the declared height.
func (n *Node) Height() int { return n.height }

// Kind names the node type, e.g. "rect" or "label".
func (n *Node) Kind() string { return n.kind }

// Attached reports whether the node has a parent.
func (n *Node) Attached() bool { return n.parent != nil }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Child returns child i and its offset inside n.
func (n *Node) Child(i int) (node *Node, x, y int) {
	c := n.children[i]
	return c.node, c.x, c.y
}

// SetStyle sets attributes added to everything drawn by n and its
// descendants. It returns n for chaining.
func (n *Node) SetStyle(style dotgrid.Style) *Node {
	n.style = style & (dotgrid.StyleBold | dotgrid.StyleUnderline)
	return n
}

// AddChild attaches child with its top-left corner at (x, y) inside n.
//
// The checks run in this order and the first failure is returned; on
// failure nothing is attached:
//   - ErrNilChild, ErrAlreadyAttached or ErrCycle when the child cannot be owned by n
//   - ErrOutOfBounds when (x, y) lies outside n
//   - ErrChildExceedsParent when the child would extend past n
//   - ErrOverlappingChildren when the child shares a cell with an earlier sibling
//
// Children that only touch along an edge do not overlap. Attaching to a
// zero-size parent is a development-time contract violation.
func (n *Node) AddChild(c *Node, x, y int) error {
	contract.Assertf(n.width > 0 && n.height > 0, "AddChild on zero-size parent %dx%d", n.width, n.height)

	parent := dotgrid.Rect{Width: n.width, Height: n.height}
	if c == nil {
		return &CompositionError{Kind: ErrNilChild, Parent: parent}
	}
	rect := dotgrid.Rect{X: x, Y: y, Width: c.width, Height: c.height}
	fail := func(kind error) error {
		return &CompositionError{Kind: kind, Parent: parent, Child: rect}
	}

	if c.parent != nil {
		return fail(ErrAlreadyAttached)
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			return fail(ErrCycle)
		}
	}
	if x < 0 || y < 0 || x >= n.width || y >= n.height {
		return fail(ErrOutOfBounds)
	}
	// x and y are in range here, so the subtractions cannot overflow.
	if c.width > n.width-x || c.height > n.height-y {
		return fail(ErrChildExceedsParent)
	}
	for _, s := range n.children {
		sibling := dotgrid.Rect{X: s.x, Y: s.y, Width: s.node.width, Height: s.node.height}
		if rect.Overlaps(sibling) {
			return &CompositionError{Kind: ErrOverlappingChildren, Parent: parent, Child: rect, Sibling: sibling}
		}
	}

	c.parent = n
	n.children = append(n.children, child{node: c, x: x, y: y})
	return nil
}

// Draw renders n with its top-left corner at the origin of region, clipped
// to region. It lets a tree be passed to dotgrid.PageBuilder.RenderWidget.
func (n *Node) Draw(pb *dotgrid.PageBuilder, region dotgrid.Region) {
	ctx := NewContext(pb, region.Rect())
	n.RenderTo(ctx, region.X(), region.Y())
}
