package layoutfile

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for a layout with no YAML document.
	ErrEmpty = errors.New("layoutfile: empty layout")

	// ErrUnknownType is returned for an item whose type is missing or not recognised.
	ErrUnknownType = errors.New("unknown item type")

	// ErrUnknownField is returned for a field the item type does not accept.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidItem is returned for an item whose values cannot be drawn.
	ErrInvalidItem = errors.New("invalid item")
)

// ItemError locates a problem in a layout description.
type ItemError struct {
	// Path is e.g. "pages[0].items[3].items[1]"; empty for the top level.
	Path string

	// Line is the 1-based YAML line, or 0 once the layout has been decoded.
	Line int

	// Kind is one of the Err* sentinels above, or a widget error.
	Kind error

	Detail string
}

func (e *ItemError) Error() string {
	where := e.Path
	if where == "" {
		where = "layout"
	}
	if e.Line > 0 {
		where = fmt.Sprintf("%s (line %d)", where, e.Line)
	}
	if e.Detail == "" {
		return fmt.Sprintf("layoutfile: %s: %v", where, e.Kind)
	}
	return fmt.Sprintf("layoutfile: %s: %v: %s", where, e.Kind, e.Detail)
}

// Unwrap returns the error kind.
func (e *ItemError) Unwrap() error {
	return e.Kind
}
