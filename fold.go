package dotgrid

import (
	"strings"

	"github.com/unilibs/uniwidth"
	"golang.org/x/text/unicode/norm"
)

// asciiFold maps common non-ASCII runes to printable ASCII.
var asciiFold = map[rune]string{
	'\u00A0': " ",   // no-break space
	'\u2007': " ",   // figure space
	'\u202F': " ",   // narrow no-break space
	'\u2018': "'",   // left single quote
	'\u2019': "'",   // right single quote
	'\u201A': ",",   // low single quote
	'\u201C': `"`,   // left double quote
	'\u201D': `"`,   // right double quote
	'\u201E': `"`,   // low double quote
	'\u00AB': "<<",  // left guillemet
	'\u00BB': ">>",  // right guillemet
	'\u2010': "-",   // hyphen
	'\u2011': "-",   // non-breaking hyphen
	'\u2012': "-",   // figure dash
	'\u2013': "-",   // en dash
	'\u2014': "-",   // em dash
	'\u2212': "-",   // minus sign
	'\u2026': "...", // ellipsis
	'\u2022': "*",   // bullet
	'\u00B7': ".",   // middle dot
	'\u00D7': "x",   // multiplication sign
	'\u00DF': "ss",  // sharp s
	'\u00E6': "ae",
	'\u00C6': "AE",
	'\u0153': "oe",
	'\u0152': "OE",
	'\u00F8': "o",
	'\u00D8': "O",
	'\u0131': "i",   // dotless i
	'\u20AC': "EUR", // euro sign
}

// FoldASCII rewrites s towards printable ASCII before it is placed on a
// page. Accented letters lose their marks ("café" becomes "cafe"),
// zero-width runes are dropped and typographic punctuation is replaced by
// its ASCII counterpart. Runes with no ASCII form are kept and end up as
// Placeholder when written.
//
// Writes never fold implicitly; callers opt in per string.
func FoldASCII(s string) string {
	if isASCII(s) {
		return s
	}
	decomposed := norm.NFD.String(s)

	var sb strings.Builder
	sb.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case r < 0x80:
			sb.WriteRune(r)
		case asciiFold[r] != "":
			sb.WriteString(asciiFold[r])
		case uniwidth.RuneWidth(r) == 0:
			// combining marks, joiners, variation selectors
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
