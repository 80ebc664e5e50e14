package dotgrid

import (
	"math"
	"strings"
	"testing"
)

func TestWriteAt(t *testing.T) {
	pb := NewPageBuilder()
	pb.WriteAt(3, 4, 'X', StyleBold).WriteAt(3, 4, 'Y', StyleUnderline)

	c, ok := pb.Cell(3, 4)
	if !ok || c.Char != 'Y' || c.Style != StyleUnderline {
		t.Errorf("Cell(3, 4) = %+v, %v; want last write to win", c, ok)
	}
}

func TestWriteAtPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want byte
	}{
		{"space", ' ', ' '},
		{"tilde", '~', '~'},
		{"tab", '\t', '?'},
		{"newline", '\n', '?'},
		{"DEL", 0x7F, '?'},
		{"latin-1", '\u00e9', '?'},
		{"CJK", '\u6f22', '?'},
		{"emoji", '\U0001F642', '?'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageBuilder().WriteAt(0, 0, tt.r, StyleNone).Build()
			if c, _ := p.Cell(0, 0); c.Char != tt.want {
				t.Errorf("writing %U stored %q, want %q", tt.r, c.Char, tt.want)
			}
		})
	}
}

func TestWriteStrTruncates(t *testing.T) {
	pb := NewPageBuilder()
	pb.WriteStr(PageWidth-3, 0, "ABCDEF", StyleNone)
	pb.WriteStr(-2, 1, "xyHELLO", StyleNone)
	pb.WriteStr(0, PageHeight, "lost", StyleNone)
	pb.WriteStr(0, -1, "lost", StyleNone)
	p := pb.Build()

	if got := p.Row(0)[PageWidth-3:]; got != "ABC" {
		t.Errorf("row 0 tail = %q, want %q", got, "ABC")
	}
	if got := strings.TrimRight(p.Row(1), " "); got != "HELLO" {
		t.Errorf("row 1 = %q, want %q", got, "HELLO")
	}
	if strings.Contains(p.String(), "lost") {
		t.Error("rows off the page should not be written")
	}
}

func TestWriteStrMultiByte(t *testing.T) {
	p := NewPageBuilder().WriteStr(0, 0, "a\u20acb", StyleNone).Build()
	if got := p.Row(0)[:3]; got != "a?b" {
		t.Errorf("row 0 = %q, want one cell per rune", got)
	}
}

func TestFillRegion(t *testing.T) {
	p := NewPageBuilder().
		FillRegion(MustRegion(2, 1, 3, 2), '#', StyleBold).
		FillRect(Rect{X: -1, Y: PageHeight - 1, Width: 3, Height: 5}, '=', StyleNone).
		Build()

	for y := 1; y < 3; y++ {
		if got := p.Row(y)[2:5]; got != "###" {
			t.Errorf("row %d = %q, want ###", y, got)
		}
	}
	if got := p.Row(PageHeight - 1)[:3]; got != "== " {
		t.Errorf("last row = %q, want clipped fill", got)
	}
}

// TestTruncationTotality writes across the whole uint16 coordinate space.
// Every off-page write must be a silent no-op.
func TestTruncationTotality(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping uint16 sweep in short mode")
	}
	pb := NewPageBuilder()
	for x := 0; x <= math.MaxUint16; x++ {
		for _, y := range []int{PageHeight, PageHeight + 1, math.MaxUint16} {
			pb.WriteAt(x, y, 'X', StyleBold)
		}
	}
	for y := 0; y <= math.MaxUint16; y++ {
		for _, x := range []int{PageWidth, PageWidth + 1, math.MaxUint16} {
			pb.WriteAt(x, y, 'X', StyleBold)
		}
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {math.MinInt, math.MinInt}, {math.MaxInt, math.MaxInt}} {
		pb.WriteAt(c[0], c[1], 'X', StyleBold)
		pb.WriteStr(c[0], c[1], "XYZ", StyleBold)
	}

	if !pb.Build().Equal(BlankPage()) {
		t.Error("off-page writes changed the page")
	}
}

func TestBuildMovesCells(t *testing.T) {
	pb := NewPageBuilder()
	pb.WriteAt(0, 0, 'A', StyleNone)
	p := pb.Build()

	// Writes after Build are ignored and never reach the frozen page.
	pb.WriteAt(0, 0, 'Z', StyleNone).WriteStr(1, 0, "ZZ", StyleNone)
	pb.FillRegion(FullPage(), 'Z', StyleNone)

	if got := p.Row(0)[:3]; got != "A  " {
		t.Errorf("frozen page row 0 = %q, want %q", got, "A  ")
	}
	if _, ok := pb.Cell(0, 0); ok {
		t.Error("a built builder should hold no cells")
	}
}

func TestZeroValueBuilder(t *testing.T) {
	var zero PageBuilder
	if c, ok := zero.Cell(3, 4); !ok || c != EmptyCell {
		t.Errorf("zero builder Cell(3, 4) = %+v, %v", c, ok)
	}

	p := (&PageBuilder{}).Build()
	if !p.Equal(BlankPage()) {
		t.Error("zero builder did not build a blank page")
	}
	if got, want := p.Row(0), BlankPage().Row(0); got != want {
		t.Errorf("Row(0) = %q, want %q", got, want)
	}
	if c, ok := p.Cell(159, 50); !ok || c != EmptyCell {
		t.Errorf("Cell(159, 50) = %+v, %v", c, ok)
	}
	if p.String() != BlankPage().String() {
		t.Error("String differs from a blank page")
	}

	var written PageBuilder
	written.WriteStr(0, 0, "Hi", StyleBold)
	if got := written.Build().Row(0)[:3]; got != "Hi " {
		t.Errorf("zero builder row 0 = %q, want %q", got, "Hi ")
	}
}

func TestPageAccessors(t *testing.T) {
	p := NewPageBuilder().WriteStr(0, 50, "END", StyleUnderline).Build()

	if c, ok := p.Cell(2, 50); !ok || c.Char != 'D' || c.Style != StyleUnderline {
		t.Errorf("Cell(2, 50) = %+v, %v", c, ok)
	}
	if _, ok := p.Cell(PageWidth, 0); ok {
		t.Error("Cell off the page should report false")
	}
	if p.Row(-1) != "" || p.Row(PageHeight) != "" {
		t.Error("Row off the page should be empty")
	}

	lines := strings.Split(p.String(), "\n")
	if len(lines) != PageHeight {
		t.Fatalf("String() has %d lines, want %d", len(lines), PageHeight)
	}
	for i, l := range lines {
		if len(l) != PageWidth {
			t.Fatalf("line %d has %d columns, want %d", i, len(l), PageWidth)
		}
	}
}

type recordingWidget struct {
	got []Region
}

func (w *recordingWidget) Draw(pb *PageBuilder, region Region) {
	w.got = append(w.got, region)
	pb.FillRegion(region, '*', StyleNone)
}

func TestRenderWidget(t *testing.T) {
	w := &recordingWidget{}
	region := MustRegion(1, 1, 2, 2)
	p := NewPageBuilder().RenderWidget(region, w).RenderWidget(region, nil).Build()

	if len(w.got) != 1 || w.got[0] != region {
		t.Fatalf("Draw called with %v, want [%s]", w.got, region)
	}
	if got := p.Row(1)[:4]; got != " ** " {
		t.Errorf("row 1 = %q", got)
	}
}
