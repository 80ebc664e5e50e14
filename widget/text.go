package widget

import (
	"strings"

	"github.com/ryanlewis/dotgrid"
)

type textBlock struct {
	lines []string
	style dotgrid.Style
}

// NewTextBlock returns a node showing one line per row. Lines longer than
// width and rows past height are clipped.
func NewTextBlock(width, height int, lines []string, style dotgrid.Style) *Node {
	owned := make([]string, len(lines))
	copy(owned, lines)
	return newNode("textblock", width, height, &textBlock{lines: owned, style: style})
}

func (t *textBlock) Draw(ctx *Context) {
	for i, line := range t.lines {
		if i >= ctx.bounds.Height {
			break
		}
		ctx.Text(0, i, line, t.style)
	}
}

// NewParagraph returns a node showing text word-wrapped to width.
// Rows past height are clipped.
func NewParagraph(width, height int, text string, style dotgrid.Style) *Node {
	return newNode("paragraph", width, height, &textBlock{lines: WrapText(text, width), style: style})
}

// WrapText breaks text into lines of at most width runes. Words are
// separated by any whitespace, including line breaks, and joined with
// single spaces. A word longer than width is split into width-sized chunks.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		if len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = line[:0]
			}
			for len(w) > width {
				lines = append(lines, string(w[:width]))
				w = w[width:]
			}
			if len(w) > 0 {
				lines = append(lines, string(w))
			}
			continue
		}

		if len(line) > 0 && len(line)+1+len(w) > width {
			lines = append(lines, string(line))
			line = line[:0]
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, w...)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
