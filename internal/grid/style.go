package grid

import "strings"

// Style is a bitmask of the binary text attributes a cell can carry.
//
// Bits:
//   - Bit 0: StyleBold - emphasized print (ESC E / ESC F)
//   - Bit 1: StyleUnderline - underlined print (ESC - 1 / ESC - 0)
//
// All other bits are reserved and are masked off when a cell is written.
type Style uint8

const (
	// StyleNone is the plain, all-off attribute state.
	StyleNone Style = 0

	// StyleBold selects emphasized print (bit 0).
	StyleBold Style = 1 << 0

	// StyleUnderline selects underlined print (bit 1).
	StyleUnderline Style = 1 << 1

	// StyleMask covers every attribute bit the printer understands.
	StyleMask = StyleBold | StyleUnderline
)

// Bold reports whether emphasis is set.
func (s Style) Bold() bool {
	return s&StyleBold != 0
}

// Underline reports whether underline is set.
func (s Style) Underline() bool {
	return s&StyleUnderline != 0
}

// Has reports whether every bit of other is set in s.
func (s Style) Has(other Style) bool {
	return s&other == other
}

// With returns s with the bits of other set.
func (s Style) With(other Style) Style {
	return s | other
}

// Without returns s with the bits of other cleared.
func (s Style) Without(other Style) Style {
	return s &^ other
}

// Normalize drops reserved bits.
func (s Style) Normalize() Style {
	return s & StyleMask
}

// String returns a human-readable representation such as "Bold|Underline".
func (s Style) String() string {
	if s.Normalize() == StyleNone {
		return "None"
	}
	var parts []string
	if s.Bold() {
		parts = append(parts, "Bold")
	}
	if s.Underline() {
		parts = append(parts, "Underline")
	}
	return strings.Join(parts, "|")
}
