// Package fixtures holds the sample documents checked by the golden tests
// and written by cmd/generate-goldens.
package fixtures

import (
	"strings"

	"github.com/ryanlewis/dotgrid"
	"github.com/ryanlewis/dotgrid/widget"
)

// Sample is a named document builder.
type Sample struct {
	Name        string
	Description string
	Build       func() (*dotgrid.Document, error)
}

// Samples returns every sample in a stable order.
func Samples() []Sample {
	return []Sample{
		{"empty", "Document with no pages", empty},
		{"hello", "HELLO at the top-left corner", hello},
		{"edges", "Writes that run off the right and bottom edges", edges},
		{"invoice", "Styled text and fills over three pages", invoice},
		{"widgets", "Boxed key/value list and label composed as a widget tree", widgets},
	}
}

// Lookup returns the sample called name.
func Lookup(name string) (Sample, bool) {
	for _, s := range Samples() {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

func empty() (*dotgrid.Document, error) {
	return dotgrid.NewDocumentBuilder().Build(), nil
}

func hello() (*dotgrid.Document, error) {
	page := dotgrid.NewPageBuilder().WriteStr(0, 0, "HELLO", dotgrid.StyleNone).Build()
	return dotgrid.NewDocumentBuilder().AddPage(page).Build(), nil
}

func edges() (*dotgrid.Document, error) {
	page := dotgrid.NewPageBuilder().
		WriteStr(159, 0, "AB", dotgrid.StyleNone).
		WriteStr(150, 50, "bottom-right corner", dotgrid.StyleBold).
		WriteAt(0, 51, 'X', dotgrid.StyleNone).
		WriteAt(-1, 0, 'X', dotgrid.StyleNone).
		FillRect(dotgrid.Rect{X: 155, Y: 45, Width: 100, Height: 100}, '#', dotgrid.StyleUnderline).
		Build()
	return dotgrid.NewDocumentBuilder().AddPage(page).Build(), nil
}

func invoice() (*dotgrid.Document, error) {
	p1 := dotgrid.NewPageBuilder().
		WriteStr(0, 0, "INVOICE 0042", dotgrid.StyleBold).
		WriteStr(0, 1, strings.Repeat("=", 40), dotgrid.StyleNone).
		WriteStr(2, 3, "Widget", dotgrid.StyleUnderline).
		WriteStr(30, 3, "12.50", dotgrid.StyleBold|dotgrid.StyleUnderline).
		FillRegion(dotgrid.MustRegion(100, 10, 20, 5), '.', dotgrid.StyleNone).
		Build()
	p2 := dotgrid.NewPageBuilder().WriteStr(70, 25, "page two", dotgrid.StyleNone).Build()
	return dotgrid.NewDocumentBuilder().AddPage(p1).AddPage(p2).AddPage(dotgrid.BlankPage()).Build(), nil
}

func widgets() (*dotgrid.Document, error) {
	box := widget.NewBox(30, 6, "Summary")
	kv := widget.NewKeyValueList(28, 2, []widget.KeyValue{
		{Key: "Items", Value: "3"},
		{Key: "Total", Value: "12.50"},
	}, "")
	if err := box.AddChild(kv, 1, 1); err != nil {
		return nil, err
	}
	paid, err := widget.NewLabel(10, "PAID", dotgrid.StyleBold)
	if err != nil {
		return nil, err
	}
	if err := box.AddChild(paid, 1, 4); err != nil {
		return nil, err
	}

	pb := dotgrid.NewPageBuilder()
	pb.RenderWidget(dotgrid.MustRegion(2, 2, 30, 6), box)
	return dotgrid.NewDocumentBuilder().AddPage(pb.Build()).Build(), nil
}

// PageBreak marks the end of each page in Preview.
const PageBreak = "<FF>"

// Preview renders doc as text: each page's rows with trailing spaces
// removed, followed by a PageBreak line.
func Preview(doc *dotgrid.Document) string {
	var lines []string
	for _, p := range doc.Pages() {
		for y := 0; y < dotgrid.PageHeight; y++ {
			lines = append(lines, strings.TrimRight(p.Row(y), " "))
		}
		lines = append(lines, PageBreak)
	}
	return strings.Join(lines, "\n")
}
