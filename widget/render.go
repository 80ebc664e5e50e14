package widget

import (
	"github.com/ryanlewis/dotgrid"
	"github.com/ryanlewis/dotgrid/internal/debug"
)

// Render draws root onto the page with its top-left corner at (x, y).
// The tree is clipped to the page; nodes partly or wholly off the page are
// drawn only where they are visible.
func Render(pb *dotgrid.PageBuilder, root *Node, x, y int, opts ...RenderOption) {
	ctx := NewContext(pb, dotgrid.FullPage().Rect(), opts...)
	root.RenderTo(ctx, x, y)
}

// RenderTo draws n at the absolute position (x, y) inside parent.
//
// The node's effective clip is the parent's clip intersected with the
// node's own rectangle. Content is drawn only when that clip covers at
// least one cell; children are visited either way, each clipped in turn.
// Rendering cannot fail.
func (n *Node) RenderTo(parent *Context, x, y int) {
	bounds := dotgrid.Rect{X: x, Y: y, Width: n.width, Height: n.height}
	ctx := parent.child(bounds, n.style)

	if ctx.debug != nil {
		ctx.debug.Emit("render", "Node", debug.NodeRenderData{
			Kind:   n.kind,
			Depth:  ctx.depth,
			X:      x,
			Y:      y,
			Width:  n.width,
			Height: n.height,
			Clip:   [4]int{ctx.clip.X, ctx.clip.Y, ctx.clip.Width, ctx.clip.Height},
		})
	}

	if ctx.clip.IsEmpty() {
		if ctx.debug != nil {
			ctx.debug.Emit("render", "ClipCollapsed", debug.ClipCollapsedData{
				Kind:     n.kind,
				Depth:    ctx.depth,
				Children: len(n.children),
			})
		}
	} else if n.content != nil {
		n.content.Draw(ctx)
	}

	for _, c := range n.children {
		at := bounds.Translate(c.x, c.y)
		c.node.RenderTo(ctx, at.X, at.Y)
	}
}
