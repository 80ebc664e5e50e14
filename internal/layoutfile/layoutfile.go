// Package layoutfile reads YAML document descriptions and builds dotgrid
// documents from them.
//
// A layout lists pages; each page lists items placed on a full-page root
// node. Box and rect items may hold nested items positioned relative to
// themselves. Items are attached with widget.Node.AddChild, so an item
// that overlaps a sibling or leaves its parent is rejected with the
// corresponding widget error.
//
//	fold: true
//	pages:
//	  - items:
//	      - {type: text, x: 0, y: 0, text: "ACME", style: [bold]}
//	      - type: box
//	        x: 0
//	        y: 2
//	        width: 40
//	        height: 6
//	        title: Notes
//	        items:
//	          - {type: paragraph, x: 1, y: 1, width: 38, height: 4, text: "..."}
package layoutfile

import (
	"fmt"
	"os"
)

// File is a parsed layout description.
type File struct {
	// Fold applies dotgrid.FoldASCII to every string before it is drawn.
	Fold  bool   `yaml:"fold"`
	Pages []Page `yaml:"pages"`
}

// Page lists the items drawn on one page.
type Page struct {
	Items []Item `yaml:"items"`
}

// Item is one node of a page. Which fields apply depends on Type; see
// itemFields.
type Item struct {
	Type   string   `yaml:"type"`
	X      int      `yaml:"x"`
	Y      int      `yaml:"y"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Style  []string `yaml:"style"`

	Text      string     `yaml:"text"`
	Char      string     `yaml:"char"`
	Title     string     `yaml:"title"`
	Lines     []string   `yaml:"lines"`
	Columns   []Column   `yaml:"columns"`
	Rows      [][]string `yaml:"rows"`
	Pairs     []Pair     `yaml:"pairs"`
	Separator string     `yaml:"separator"`

	Items []Item `yaml:"items"`
}

// Column is a table column.
type Column struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
}

// Pair is a key/value entry.
type Pair struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

var (
	topFields  = fieldSet("fold", "pages")
	pageFields = fieldSet("items")
	common     = []string{"type", "x", "y", "style"}

	itemFields = map[string]map[string]bool{
		"text":      fieldSet(append(common, "width", "text")...),
		"fill":      fieldSet(append(common, "width", "height", "char")...),
		"label":     fieldSet(append(common, "width", "text")...),
		"box":       fieldSet(append(common, "width", "height", "title", "items")...),
		"rect":      fieldSet(append(common, "width", "height", "items")...),
		"paragraph": fieldSet(append(common, "width", "height", "text")...),
		"textblock": fieldSet(append(common, "width", "height", "lines")...),
		"table":     fieldSet(append(common, "width", "height", "columns", "rows")...),
		"keyvalue":  fieldSet(append(common, "width", "height", "pairs", "separator")...),
	}

	columnFields = fieldSet("name", "width")
	pairFields   = fieldSet("key", "value")
)

func fieldSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Load reads and parses the layout file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layoutfile: %w", err)
	}
	return Parse(data)
}
