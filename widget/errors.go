package widget

import (
	"errors"
	"fmt"

	"github.com/ryanlewis/dotgrid"
)

// Composition error kinds. Match them with errors.Is; details are on
// *CompositionError.
var (
	// ErrChildExceedsParent is returned when a child would extend past its parent.
	ErrChildExceedsParent = errors.New("child exceeds parent")

	// ErrOutOfBounds is returned when the child offset itself lies outside the parent.
	ErrOutOfBounds = errors.New("offset out of bounds")

	// ErrOverlappingChildren is returned when a child would share cells with a sibling.
	ErrOverlappingChildren = errors.New("overlapping children")

	// ErrInsufficientSpace is returned by layout helpers that have run out of room.
	ErrInsufficientSpace = errors.New("insufficient space")

	// ErrAlreadyAttached is returned when the child already has a parent.
	ErrAlreadyAttached = errors.New("node already attached")

	// ErrCycle is returned when the child is the parent itself or one of its ancestors.
	ErrCycle = errors.New("attachment would create a cycle")

	// ErrNilChild is returned when AddChild is given a nil node.
	ErrNilChild = errors.New("nil child")
)

// Content error kinds, returned by leaf constructors.
var (
	// ErrTextExceedsWidth is returned when a label's text has more cells than its width.
	ErrTextExceedsWidth = errors.New("text exceeds width")

	// ErrTextHasNewline is returned when single-line text contains a line break.
	ErrTextHasNewline = errors.New("text contains a line break")

	// ErrNegativeWidth is returned when a leaf is given a width below zero.
	ErrNegativeWidth = errors.New("negative width")
)

// CompositionError describes a rejected attachment or layout request.
type CompositionError struct {
	// Kind is one of the composition Err* sentinels.
	Kind error

	// Parent is the parent's size; X and Y are zero.
	Parent dotgrid.Rect

	// Child is the requested child rectangle, relative to the parent.
	Child dotgrid.Rect

	// Sibling is the existing child hit by an overlap, relative to the parent.
	Sibling dotgrid.Rect

	// Layout, Required and Available describe an ErrInsufficientSpace failure.
	Layout    string
	Required  int
	Available int
}

func (e *CompositionError) Error() string {
	switch e.Kind {
	case ErrOverlappingChildren:
		return fmt.Sprintf("widget: %v: %s intersects %s", e.Kind, e.Child, e.Sibling)
	case ErrInsufficientSpace:
		return fmt.Sprintf("widget: %v: %s needs %d, %d available", e.Kind, e.Layout, e.Required, e.Available)
	case ErrAlreadyAttached, ErrCycle, ErrNilChild:
		return fmt.Sprintf("widget: %v", e.Kind)
	default:
		return fmt.Sprintf("widget: %v: child %s in %dx%d parent", e.Kind, e.Child, e.Parent.Width, e.Parent.Height)
	}
}

// Unwrap returns the error kind.
func (e *CompositionError) Unwrap() error {
	return e.Kind
}

// TextError describes text rejected by a leaf constructor.
type TextError struct {
	Kind   error
	Text   string
	Length int
	Width  int
}

func (e *TextError) Error() string {
	switch e.Kind {
	case ErrTextHasNewline:
		return fmt.Sprintf("widget: %v: %q", e.Kind, e.Text)
	case ErrNegativeWidth:
		return fmt.Sprintf("widget: %v: %d", e.Kind, e.Width)
	}
	return fmt.Sprintf("widget: %v: %d cells in width %d", e.Kind, e.Length, e.Width)
}

// Unwrap returns the error kind.
func (e *TextError) Unwrap() error {
	return e.Kind
}
