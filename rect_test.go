package dotgrid

import (
	"math"
	"testing"
)

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"off page left", Rect{-5, 0, 10, 3}, Rect{0, 0, PageWidth, PageHeight}, Rect{0, 0, 5, 3}},
		{"entirely off page", Rect{200, 60, 10, 3}, Rect{0, 0, PageWidth, PageHeight}, Rect{200, 60, 0, 0}},
		{"negative extent clamps", Rect{0, 0, 2, 2}, Rect{5, 5, 2, 2}, Rect{5, 5, 0, 0}},
		{"saturating edges", Rect{math.MaxInt - 1, 0, 10, 10}, Rect{0, 0, math.MaxInt, 10}, Rect{math.MaxInt - 1, 0, 1, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("%s.Intersect(%s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"shared cell", Rect{0, 0, 5, 5}, Rect{4, 4, 5, 5}, true},
		{"touching right edge", Rect{0, 0, 5, 5}, Rect{5, 0, 5, 5}, false},
		{"touching bottom edge", Rect{0, 0, 5, 5}, Rect{0, 5, 5, 5}, false},
		{"touching corner", Rect{0, 0, 5, 5}, Rect{5, 5, 5, 5}, false},
		{"zero width inside", Rect{0, 0, 5, 5}, Rect{2, 2, 0, 2}, false},
		{"nested", Rect{0, 0, 10, 10}, Rect{2, 2, 2, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%s.Overlaps(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{2, 3, 4, 5}
	if !r.Contains(2, 3) || !r.Contains(5, 7) {
		t.Error("corners should be inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 8) || r.Contains(1, 3) {
		t.Error("cells on or past the exclusive edges should be outside")
	}
	if !r.ContainsRect(Rect{3, 4, 2, 2}) || r.ContainsRect(Rect{3, 4, 4, 2}) {
		t.Error("ContainsRect mismatch")
	}
	if !r.ContainsRect(Rect{100, 100, 0, 0}) {
		t.Error("an empty rect is contained by any rect")
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{1, 2, 3, 4}.Translate(10, -2)
	if r != (Rect{11, 0, 3, 4}) {
		t.Errorf("Translate = %s", r)
	}
	if got := (Rect{math.MaxInt, 0, 1, 1}).Translate(1, 0); got.X != math.MaxInt {
		t.Errorf("Translate should saturate, got X=%d", got.X)
	}
}
