// Package escp encodes frozen pages into an ESC/P control-code stream.
//
// The byte values target EPSON LQ-class 24-pin printers. The stream layout is:
//
//	ESC @ SI                      initialization (once)
//	{ row bytes CR LF } x 51      per page, attribute toggles inline
//	FF                            after every page, including the last
//
// Attribute toggles are emitted only where the tracked state differs from
// the cell being printed, and every row ends with all attributes off.
package escp

// Control codes.
const (
	ESC = 0x1B
	SI  = 0x0F
	CR  = 0x0D
	LF  = 0x0A
	FF  = 0x0C
	DLE = 0x10
	EOT = 0x04
)

// Command sequences. These slices are never modified.
var (
	// Reset is ESC @: initialize printer.
	Reset = []byte{ESC, '@'}

	// Condensed is SI: select condensed (17 cpi) so 160 columns fit a line.
	Condensed = []byte{SI}

	// BoldOn is ESC E: select emphasized print.
	BoldOn = []byte{ESC, 'E'}

	// BoldOff is ESC F: cancel emphasized print.
	BoldOff = []byte{ESC, 'F'}

	// UnderlineOn is ESC - 1.
	UnderlineOn = []byte{ESC, '-', 0x01}

	// UnderlineOff is ESC - 0.
	UnderlineOff = []byte{ESC, '-', 0x00}

	// LineEnd is CR LF.
	LineEnd = []byte{CR, LF}

	// PageEnd is FF.
	PageEnd = []byte{FF}

	// StatusQuery is DLE EOT 1: transmit printer status.
	StatusQuery = []byte{DLE, EOT, 0x01}
)

// Init returns a fresh copy of the initialization sequence.
func Init() []byte {
	out := make([]byte, 0, len(Reset)+len(Condensed))
	out = append(out, Reset...)
	return append(out, Condensed...)
}
