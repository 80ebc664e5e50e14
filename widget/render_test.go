package widget

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/ryanlewis/dotgrid"
	"github.com/ryanlewis/dotgrid/internal/debug"
)

// flood fills its whole declared rectangle and records every clip it saw.
type flood struct {
	ch    rune
	clips *[]dotgrid.Rect
	calls int
}

func (f *flood) Draw(ctx *Context) {
	f.calls++
	if f.clips != nil {
		*f.clips = append(*f.clips, ctx.Clip())
	}
	ctx.Fill(0, 0, ctx.Bounds().Width, ctx.Bounds().Height, f.ch, dotgrid.StyleNone)
}

func render(root *Node, x, y int, opts ...RenderOption) *dotgrid.Page {
	pb := dotgrid.NewPageBuilder()
	Render(pb, root, x, y, opts...)
	return pb.Build()
}

func countChar(p *dotgrid.Page, ch byte) int {
	return strings.Count(p.String(), string(ch))
}

func TestRenderPlacesChildren(t *testing.T) {
	root := NewRect(20, 5)
	a := New(3, 2, &flood{ch: 'a'})
	b := New(4, 1, &flood{ch: 'b'})
	mustAdd(t, root, a, 1, 1)
	mustAdd(t, root, b, 10, 3)

	p := render(root, 50, 20)
	if got := p.Row(21)[51:54]; got != "aaa" {
		t.Errorf("row 21 = %q, want aaa at column 51", got)
	}
	if got := p.Row(23)[60:64]; got != "bbbb" {
		t.Errorf("row 23 = %q, want bbbb at column 60", got)
	}
	if countChar(p, 'a') != 6 || countChar(p, 'b') != 4 {
		t.Error("children drew outside their rectangles")
	}
}

func TestChildClippedByAncestor(t *testing.T) {
	// The leaf is wider than its container's visible part once the root is
	// pushed off the right edge of the page.
	root := NewRect(10, 3)
	leaf := New(10, 3, &flood{ch: '#'})
	mustAdd(t, root, leaf, 0, 0)

	p := render(root, dotgrid.PageWidth-4, dotgrid.PageHeight-1)
	if got := countChar(p, '#'); got != 4 {
		t.Errorf("visible cells = %d, want 4", got)
	}
}

func TestLeafNeverEscapesAncestor(t *testing.T) {
	// A custom content that tries to write far outside its node.
	rogue := contentFunc(func(ctx *Context) {
		ctx.Fill(-5, -5, 40, 40, 'X', dotgrid.StyleNone)
		ctx.Put(100, 0, 'X', dotgrid.StyleNone)
		ctx.Text(-3, 0, "XXXXXXXXXXXX", dotgrid.StyleNone)
	})
	root := NewRect(8, 4)
	mustAdd(t, root, New(6, 2, rogue), 1, 1)

	p := render(root, 10, 10)
	for y := 0; y < dotgrid.PageHeight; y++ {
		for x := 0; x < dotgrid.PageWidth; x++ {
			c, _ := p.Cell(x, y)
			inside := x >= 11 && x < 17 && y >= 11 && y < 13
			if c.Char == 'X' && !inside {
				t.Fatalf("write escaped to (%d, %d)", x, y)
			}
			if c.Char != 'X' && inside {
				t.Fatalf("cell (%d, %d) inside the node was not written", x, y)
			}
		}
	}
}

type contentFunc func(ctx *Context)

func (f contentFunc) Draw(ctx *Context) { f(ctx) }

func TestCollapsedClipStillVisitsChildren(t *testing.T) {
	var visited []string
	recorder := func(name string) Content {
		return contentFunc(func(ctx *Context) { visited = append(visited, name) })
	}

	root := NewRect(10, 10)
	mid := New(5, 5, recorder("mid"))
	leaf := New(2, 2, recorder("leaf"))
	mustAdd(t, root, mid, 0, 0)
	mustAdd(t, mid, leaf, 1, 1)

	debug.SetEnabled(true)
	defer debug.SetEnabled(false)
	var trace bytes.Buffer
	session := debug.NewSession(debug.NewJSONSink(&trace))

	// Entirely off the page: nothing is drawn, every node is still visited.
	p := render(root, -100, -100, WithDebug(session))
	session.Close()

	if len(visited) != 0 {
		t.Errorf("content drawn with an empty clip: %v", visited)
	}
	if !p.Equal(dotgrid.BlankPage()) {
		t.Error("off-page tree changed the page")
	}
	if got := strings.Count(trace.String(), `"event":"Node"`); got != 3 {
		t.Errorf("Node events = %d, want 3 (children are still visited)", got)
	}
	if got := strings.Count(trace.String(), `"event":"ClipCollapsed"`); got != 3 {
		t.Errorf("ClipCollapsed events = %d, want 3", got)
	}
}

func TestClipMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		depth := 1 + rng.Intn(12)
		var clips []dotgrid.Rect

		w, h := 20+rng.Intn(140), 5+rng.Intn(46)
		root := New(w, h, &flood{ch: '.', clips: &clips})
		n := root
		for d := 1; d < depth && n.Width() > 1 && n.Height() > 1; d++ {
			cw, ch := 1+rng.Intn(n.Width()), 1+rng.Intn(n.Height())
			x, y := rng.Intn(n.Width()-cw+1), rng.Intn(n.Height()-ch+1)
			c := New(cw, ch, &flood{ch: '.', clips: &clips})
			mustAdd(t, n, c, x, y)
			n = c
		}

		px, py := rng.Intn(240)-40, rng.Intn(100)-25
		region := dotgrid.FullPage().Rect()
		pb := dotgrid.NewPageBuilder()
		Render(pb, root, px, py)

		prev := region
		for i, clip := range clips {
			if !prev.ContainsRect(clip) {
				t.Fatalf("trial %d: clip %d %s is not inside its parent's %s", trial, i, clip, prev)
			}
			prev = clip
		}
	}
}

func TestDrawThroughRenderWidget(t *testing.T) {
	root := NewRect(10, 2)
	lbl, err := NewLabel(10, "0123456789", dotgrid.StyleNone)
	if err != nil {
		t.Fatal(err)
	}
	mustAdd(t, root, lbl, 0, 0)

	// The region is narrower than the tree; it clips like an ancestor.
	region := dotgrid.MustRegion(5, 3, 4, 1)
	p := dotgrid.NewPageBuilder().RenderWidget(region, root).Build()

	if got := strings.TrimSpace(p.Row(3)); got != "0123" {
		t.Errorf("row 3 = %q, want %q", got, "0123")
	}
}

func TestInheritedStyle(t *testing.T) {
	root := NewRect(10, 2).SetStyle(dotgrid.StyleUnderline)
	lbl, _ := NewLabel(5, "bold", dotgrid.StyleBold)
	mustAdd(t, root, lbl, 0, 0)

	p := render(root, 0, 0)
	c, _ := p.Cell(0, 0)
	if c.Style != dotgrid.StyleBold|dotgrid.StyleUnderline {
		t.Errorf("style = %s, want Bold|Underline", c.Style)
	}

	p = render(root, 0, 0, WithStyle(dotgrid.StyleNone))
	if c, _ := p.Cell(1, 0); !c.Style.Underline() {
		t.Error("node style should apply regardless of the root default")
	}
}

func mustAdd(t *testing.T, parent, c *Node, x, y int) {
	t.Helper()
	if err := parent.AddChild(c, x, y); err != nil {
		t.Fatalf("AddChild(%s at %d,%d): %v", c.Kind(), x, y, err)
	}
}
