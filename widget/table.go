package widget

import "github.com/ryanlewis/dotgrid"

// TableColumn defines one fixed-width table column.
type TableColumn struct {
	Name  string
	Width int
}

type table struct {
	columns []TableColumn
	rows    [][]string
}

// NewTable returns a node showing a bold header row followed by one row per
// entry of rows. Each cell is cut to its column width; columns and rows
// that do not fit the node are clipped. Missing cells are left blank.
func NewTable(width, height int, columns []TableColumn, rows [][]string) *Node {
	t := &table{
		columns: make([]TableColumn, len(columns)),
		rows:    make([][]string, len(rows)),
	}
	copy(t.columns, columns)
	for i, r := range rows {
		t.rows[i] = append([]string(nil), r...)
	}
	return newNode("table", width, height, t)
}

func (t *table) Draw(ctx *Context) {
	t.drawRow(ctx, 0, nil, dotgrid.StyleBold)
	for i, row := range t.rows {
		y := i + 1
		if y >= ctx.bounds.Height {
			break
		}
		t.drawRow(ctx, y, row, dotgrid.StyleNone)
	}
}

// drawRow draws one row; a nil row draws the column names.
func (t *table) drawRow(ctx *Context, y int, row []string, style dotgrid.Style) {
	x := 0
	for i, col := range t.columns {
		if x >= ctx.bounds.Width {
			return
		}
		text := col.Name
		if row != nil {
			text = ""
			if i < len(row) {
				text = row[i]
			}
		}
		cw := max(col.Width, 0)
		n := 0
		for _, r := range text {
			if n >= cw {
				break
			}
			ctx.Put(x+n, y, r, style)
			n++
		}
		x += cw
	}
}
