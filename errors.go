package dotgrid

import (
	"errors"
	"fmt"
)

// Geometry error kinds. Match them with errors.Is; read the details of a
// failed call with errors.As and *GeometryError.
var (
	// ErrRegionOutOfBounds is returned when a rectangle would extend past the page.
	ErrRegionOutOfBounds = errors.New("region out of bounds")

	// ErrInvalidDimensions is returned when padding would leave a negative interior.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidSplit is returned when a split point exceeds the region.
	ErrInvalidSplit = errors.New("invalid split")
)

// GeometryError describes a rejected Region operation.
type GeometryError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Op names the failed operation, e.g. "NewRegion" or "SplitVertical".
	Op string

	// Rect is the rectangle that was requested or operated on.
	Rect Rect

	// Value is the offending split point or padding, when there is one.
	Value int
}

func (e *GeometryError) Error() string {
	switch e.Kind {
	case ErrInvalidSplit:
		return fmt.Sprintf("dotgrid: %s: %v: split %d outside %s", e.Op, e.Kind, e.Value, e.Rect)
	case ErrInvalidDimensions:
		if e.Value < 0 {
			return fmt.Sprintf("dotgrid: %s: %v: negative padding %d for %s", e.Op, e.Kind, e.Value, e.Rect)
		}
		return fmt.Sprintf("dotgrid: %s: %v: padding %d too large for %s", e.Op, e.Kind, e.Value, e.Rect)
	default:
		return fmt.Sprintf("dotgrid: %s: %v: %s on %dx%d page", e.Op, e.Kind, e.Rect, PageWidth, PageHeight)
	}
}

// Unwrap returns the error kind.
func (e *GeometryError) Unwrap() error {
	return e.Kind
}
