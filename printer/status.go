package printer

import (
	"strings"

	"github.com/ryanlewis/dotgrid/internal/debug"
)

// Status is the decoded answer to a DLE EOT 1 status query.
type Status uint8

// Status flags.
const (
	StatusOnline Status = 1 << iota
	StatusPaperOut
	StatusError
)

// Bits of the raw status byte.
const (
	bitOffline  = 1 << 3
	bitPaperOut = 1 << 5
	bitError    = 1 << 6
)

// DecodeStatus decodes a raw status byte. Bit 3 set means offline, bit 5
// paper out, bit 6 an error condition; other bits are ignored.
func DecodeStatus(raw byte) Status {
	var s Status
	if raw&bitOffline == 0 {
		s |= StatusOnline
	}
	if raw&bitPaperOut != 0 {
		s |= StatusPaperOut
	}
	if raw&bitError != 0 {
		s |= StatusError
	}
	return s
}

// Has reports whether every flag in f is set.
func (s Status) Has(f Status) bool {
	return s&f == f
}

// Ready reports whether the printer is online with paper and no error.
func (s Status) Ready() bool {
	return s == StatusOnline
}

// String lists the conditions that keep the printer from being ready, or
// "ready".
func (s Status) String() string {
	if s.Ready() {
		return "ready"
	}
	return strings.Join(debug.FormatStatusBits(s.raw()), "|")
}

// raw re-encodes s as a status byte.
func (s Status) raw() byte {
	var b byte
	if !s.Has(StatusOnline) {
		b |= bitOffline
	}
	if s.Has(StatusPaperOut) {
		b |= bitPaperOut
	}
	if s.Has(StatusError) {
		b |= bitError
	}
	return b
}
