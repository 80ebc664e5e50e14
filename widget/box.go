package widget

import "github.com/ryanlewis/dotgrid"

type box struct {
	title string
}

// NewBox returns a container framed by an ASCII border: '+' corners, '-'
// top and bottom edges and '|' sides. A non-empty title is written into
// the top edge from column 2 and cut to leave the last two columns intact.
// Boxes smaller than 3x3 draw no border.
//
// Children belong inside the frame, at offsets of at least (1, 1); see
// BoxInterior.
func NewBox(width, height int, title string) *Node {
	return newNode("box", width, height, &box{title: title})
}

// BoxInterior returns the size left inside the border of a width x height box.
func BoxInterior(width, height int) (int, int) {
	return max(width-2, 0), max(height-2, 0)
}

func (b *box) Draw(ctx *Context) {
	w, h := ctx.bounds.Width, ctx.bounds.Height
	if w < 3 || h < 3 {
		return
	}

	ctx.Fill(1, 0, w-2, 1, '-', dotgrid.StyleNone)
	ctx.Fill(1, h-1, w-2, 1, '-', dotgrid.StyleNone)
	ctx.Fill(0, 1, 1, h-2, '|', dotgrid.StyleNone)
	ctx.Fill(w-1, 1, 1, h-2, '|', dotgrid.StyleNone)
	for _, corner := range [4][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		ctx.Put(corner[0], corner[1], '+', dotgrid.StyleNone)
	}

	limit := w - 4
	for i, r := range []rune(b.title) {
		if i >= limit {
			break
		}
		ctx.Put(2+i, 0, r, dotgrid.StyleNone)
	}
}
