package printer

import (
	"context"
	"fmt"

	"github.com/ryanlewis/dotgrid/internal/escp"
)

// Limits of the single-byte ESC/P parameters.
const (
	// MaxPageLines is the longest page ESC C accepts, in lines.
	MaxPageLines = 127

	// MaxPageDots is the longest page ESC ( C accepts, in dots.
	MaxPageDots = 0xFFFF

	maxByteArg = 0xFF
)

// ArgumentError describes a command rejected before anything was sent.
type ArgumentError struct {
	// Kind is ErrInvalidPageLength or ErrArgumentRange.
	Kind error

	// Command names the rejected method, e.g. "SetPageLength".
	Command string

	Value int
	Min   int
	Max   int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("printer: %s: %v: %d not in %d..%d", e.Command, e.Kind, e.Value, e.Min, e.Max)
}

// Unwrap returns the error kind.
func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

func checkRange(cmd string, kind error, v, lo, hi int) error {
	if v < lo || v > hi {
		return &ArgumentError{Kind: kind, Command: cmd, Value: v, Min: lo, Max: hi}
	}
	return nil
}

// SetPageLength sends ESC C n, setting the form length to lines at the
// current line spacing. lines must be 1..MaxPageLines.
func (p *Printer) SetPageLength(ctx context.Context, lines int) error {
	if err := checkRange("SetPageLength", ErrInvalidPageLength, lines, 1, MaxPageLines); err != nil {
		return err
	}
	return p.Send(ctx, []byte{escp.ESC, 'C', byte(lines)})
}

// SetPageLengthDots sends ESC ( C, setting the form length in dots of
// the current vertical unit.
func (p *Printer) SetPageLengthDots(ctx context.Context, dots int) error {
	if err := checkRange("SetPageLengthDots", ErrInvalidPageLength, dots, 1, MaxPageDots); err != nil {
		return err
	}
	return p.Send(ctx, []byte{escp.ESC, '(', 'C', 0x02, 0x00, byte(dots), byte(dots >> 8)})
}

// FormFeed ejects the current page.
func (p *Printer) FormFeed(ctx context.Context) error {
	return p.Send(ctx, escp.PageEnd)
}

// LineFeed advances the paper one line.
func (p *Printer) LineFeed(ctx context.Context) error {
	return p.Send(ctx, []byte{escp.LF})
}

// CarriageReturn moves the print head to the left margin.
func (p *Printer) CarriageReturn(ctx context.Context) error {
	return p.Send(ctx, []byte{escp.CR})
}

// SetLineSpacing sends ESC 3 n, setting line spacing to n/180 inch.
func (p *Printer) SetLineSpacing(ctx context.Context, n int) error {
	if err := checkRange("SetLineSpacing", ErrArgumentRange, n, 0, maxByteArg); err != nil {
		return err
	}
	return p.Send(ctx, []byte{escp.ESC, '3', byte(n)})
}

// SetDefaultLineSpacing sends ESC 2, restoring 1/6 inch spacing.
func (p *Printer) SetDefaultLineSpacing(ctx context.Context) error {
	return p.Send(ctx, []byte{escp.ESC, '2'})
}

// SetLeftMargin sends ESC l n. The margin is in columns of the current pitch.
func (p *Printer) SetLeftMargin(ctx context.Context, col int) error {
	if err := checkRange("SetLeftMargin", ErrArgumentRange, col, 0, maxByteArg); err != nil {
		return err
	}
	return p.Send(ctx, []byte{escp.ESC, 'l', byte(col)})
}

// SetRightMargin sends ESC Q n. The margin is in columns of the current pitch.
func (p *Printer) SetRightMargin(ctx context.Context, col int) error {
	if err := checkRange("SetRightMargin", ErrArgumentRange, col, 1, maxByteArg); err != nil {
		return err
	}
	return p.Send(ctx, []byte{escp.ESC, 'Q', byte(col)})
}
