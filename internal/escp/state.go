package escp

import "github.com/ryanlewis/dotgrid/internal/grid"

// State tracks the printer's active attributes while a page is encoded.
// It has exactly four values (bold x underline); the zero value is all off.
type State struct {
	bold      bool
	underline bool

	// toggles counts emitted attribute codes, for tracing only.
	toggles int
}

// Style returns the tracked attributes as a grid.Style.
func (s *State) Style() grid.Style {
	var st grid.Style
	if s.bold {
		st |= grid.StyleBold
	}
	if s.underline {
		st |= grid.StyleUnderline
	}
	return st
}

// TransitionTo appends the codes needed to move from the current state to
// target and returns the extended buffer. Emphasis is always handled before
// underline; an attribute already in the wanted state emits nothing.
func (s *State) TransitionTo(dst []byte, target grid.Style) []byte {
	if b := target.Bold(); b != s.bold {
		if b {
			dst = append(dst, BoldOn...)
		} else {
			dst = append(dst, BoldOff...)
		}
		s.bold = b
		s.toggles++
	}
	if u := target.Underline(); u != s.underline {
		if u {
			dst = append(dst, UnderlineOn...)
		} else {
			dst = append(dst, UnderlineOff...)
		}
		s.underline = u
		s.toggles++
	}
	return dst
}

// Reset appends the codes that return the printer to all-off.
func (s *State) Reset(dst []byte) []byte {
	return s.TransitionTo(dst, grid.StyleNone)
}

// Toggles returns how many attribute codes have been emitted.
func (s *State) Toggles() int {
	return s.toggles
}
