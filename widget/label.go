package widget

import (
	"strings"
	"unicode/utf8"

	"github.com/ryanlewis/dotgrid"
)

type label struct {
	text  string
	style dotgrid.Style
}

// NewLabel returns a single-row node of the given width showing text.
// It fails with ErrNegativeWidth if width is below zero, with
// ErrTextHasNewline if text contains a line break and with
// ErrTextExceedsWidth if text has more runes than width.
func NewLabel(width int, text string, style dotgrid.Style) (*Node, error) {
	if width < 0 {
		return nil, &TextError{Kind: ErrNegativeWidth, Text: text, Width: width}
	}
	if strings.ContainsAny(text, "\r\n") {
		return nil, &TextError{Kind: ErrTextHasNewline, Text: text, Width: width}
	}
	if n := utf8.RuneCountInString(text); n > width {
		return nil, &TextError{Kind: ErrTextExceedsWidth, Text: text, Length: n, Width: width}
	}
	return newNode("label", width, 1, &label{text: text, style: style}), nil
}

func (l *label) Draw(ctx *Context) {
	ctx.Text(0, 0, l.text, l.style)
}
