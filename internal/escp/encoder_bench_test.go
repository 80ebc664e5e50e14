package escp

import (
	"io"
	"testing"

	"github.com/ryanlewis/dotgrid/internal/grid"
)

func benchPages() []*grid.Store {
	plain := grid.New()
	plain.Fill(0, 0, grid.Width, grid.Height, '.', grid.StyleNone)

	striped := grid.New()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			striped.Write(x, y, 'a'+rune(x%26), grid.Style(x%4))
		}
	}
	return []*grid.Store{plain, striped}
}

func BenchmarkAppendDocument(b *testing.B) {
	pages := benchPages()
	buf := make([]byte, 0, 4*typicalPageBytes)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = AppendDocument(buf[:0], pages, nil)
	}
}

func BenchmarkEncode(b *testing.B) {
	pages := benchPages()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(io.Discard, pages, nil); err != nil {
			b.Fatal(err)
		}
	}
}
