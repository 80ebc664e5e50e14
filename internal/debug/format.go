package debug

import (
	"fmt"
	"strings"
)

// FormatCodes renders a control-code sequence for display, e.g.
// "ESC E ESC - 1" or "CR LF".
func FormatCodes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	parts := make([]string, 0, len(b))
	for _, c := range b {
		parts = append(parts, codeName(c))
	}
	return strings.Join(parts, " ")
}

func codeName(c byte) string {
	switch c {
	case 0x1B:
		return "ESC"
	case 0x0F:
		return "SI"
	case 0x0D:
		return "CR"
	case 0x0A:
		return "LF"
	case 0x0C:
		return "FF"
	case 0x10:
		return "DLE"
	case 0x04:
		return "EOT"
	case 0x00, 0x01:
		return fmt.Sprintf("%d", c)
	}
	if c >= 0x20 && c < 0x7F {
		return string(rune(c))
	}
	return fmt.Sprintf("0x%02X", c)
}

// FormatStatusBits names the set bits of a raw printer status byte
// that dotgrid interprets.
func FormatStatusBits(raw byte) []string {
	var names []string
	if raw&0x08 != 0 {
		names = append(names, "Offline")
	}
	if raw&0x20 != 0 {
		names = append(names, "PaperOut")
	}
	if raw&0x40 != 0 {
		names = append(names, "Error")
	}
	if len(names) == 0 {
		return []string{"None"}
	}
	return names
}
