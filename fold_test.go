package dotgrid

import "testing"

func TestFoldASCII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii unchanged", "Total: 12.50", "Total: 12.50"},
		{"acute accents", "café résumé", "cafe resume"},
		{"umlauts", "Müller Straße", "Muller Strasse"},
		{"cedilla and tilde", "façade São", "facade Sao"},
		{"curly quotes", "\u201cquoted\u201d \u2018x\u2019", `"quoted" 'x'`},
		{"dashes", "1\u20132 \u2014 3", "1-2 - 3"},
		{"ellipsis", "wait\u2026", "wait..."},
		{"no-break space", "12\u00a0kg", "12 kg"},
		{"zero width joiner dropped", "a\u200db", "ab"},
		{"combining mark dropped", "e\u0301", "e"},
		{"no ascii form kept", "漢", "漢"},
		{"control chars kept", "a\nb", "a\nb"},
		{"euro", "5€", "5EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FoldASCII(tt.in); got != tt.want {
				t.Errorf("FoldASCII(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFoldASCIIThenWrite(t *testing.T) {
	p := NewPageBuilder().WriteStr(0, 0, FoldASCII("Cr\u00e8me br\u00fbl\u00e9e \u6f22"), StyleNone).Build()
	if got := p.Row(0)[:14]; got != "Creme brulee ?" {
		t.Errorf("row 0 = %q", got)
	}
}
