package widget

import (
	"github.com/ryanlewis/dotgrid"
	"github.com/ryanlewis/dotgrid/internal/debug"
)

// Context is the render state handed to a node's content: the destination
// page, the node's absolute rectangle, its effective clip and the default
// style. Coordinates passed to the write methods are relative to the node's
// top-left corner.
//
// Every write is checked against the clip before it reaches the page, so
// content may draw freely within its declared size.
type Context struct {
	pb     *dotgrid.PageBuilder
	bounds dotgrid.Rect
	clip   dotgrid.Rect
	style  dotgrid.Style
	depth  int
	debug  *debug.Session
}

// RenderOption configures a render pass.
type RenderOption func(*Context)

// WithDebug traces the render pass through session.
func WithDebug(session *debug.Session) RenderOption {
	return func(ctx *Context) {
		ctx.debug = session
	}
}

// WithStyle sets the default style for the whole tree.
func WithStyle(style dotgrid.Style) RenderOption {
	return func(ctx *Context) {
		ctx.style = style & (dotgrid.StyleBold | dotgrid.StyleUnderline)
	}
}

// NewContext returns a root context that clips to clip and draws into pb.
func NewContext(pb *dotgrid.PageBuilder, clip dotgrid.Rect, opts ...RenderOption) *Context {
	ctx := &Context{pb: pb, bounds: clip, clip: clip}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// child derives the context for a node at bounds inside ctx.
func (ctx *Context) child(bounds dotgrid.Rect, style dotgrid.Style) *Context {
	return &Context{
		pb:     ctx.pb,
		bounds: bounds,
		clip:   ctx.clip.Intersect(bounds),
		style:  ctx.style | style,
		depth:  ctx.depth + 1,
		debug:  ctx.debug,
	}
}

// Clip returns the effective clip rectangle in page coordinates.
func (ctx *Context) Clip() dotgrid.Rect { return ctx.clip }

// Bounds returns the node's absolute rectangle, before clipping.
func (ctx *Context) Bounds() dotgrid.Rect { return ctx.bounds }

// Origin returns the node's top-left corner in page coordinates.
func (ctx *Context) Origin() (x, y int) { return ctx.bounds.X, ctx.bounds.Y }

// Style returns the default style inherited from the node's ancestors.
func (ctx *Context) Style() dotgrid.Style { return ctx.style }

// Depth returns the node's depth; the root is 1.
func (ctx *Context) Depth() int { return ctx.depth }

// Visible reports whether the node-relative cell (dx, dy) lies inside the clip.
func (ctx *Context) Visible(dx, dy int) bool {
	r := dotgrid.Rect{X: ctx.bounds.X, Y: ctx.bounds.Y, Width: 1, Height: 1}.Translate(dx, dy)
	return ctx.clip.Contains(r.X, r.Y)
}

// Put writes ch at the node-relative cell (dx, dy) with the default style
// plus style.
func (ctx *Context) Put(dx, dy int, ch rune, style dotgrid.Style) {
	if ctx.pb == nil || !ctx.Visible(dx, dy) {
		return
	}
	ctx.pb.WriteAt(ctx.bounds.X+dx, ctx.bounds.Y+dy, ch, ctx.style|style)
}

// Text writes s one rune per cell from (dx, dy) rightwards. It returns the
// number of cells the text spans, visible or not.
func (ctx *Context) Text(dx, dy int, s string, style dotgrid.Style) int {
	n := 0
	for _, r := range s {
		ctx.Put(dx+n, dy, r, style)
		n++
	}
	return n
}

// Fill writes ch to every visible cell of the node-relative rectangle.
func (ctx *Context) Fill(dx, dy, width, height int, ch rune, style dotgrid.Style) {
	if ctx.pb == nil {
		return
	}
	r := dotgrid.Rect{X: ctx.bounds.X, Y: ctx.bounds.Y, Width: width, Height: height}.Translate(dx, dy)
	ctx.pb.FillRect(ctx.clip.Intersect(r), ch, ctx.style|style)
}
