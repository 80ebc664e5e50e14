package contract

import (
	"strings"
	"testing"
)

func TestViolationPrefix(t *testing.T) {
	got := violation("zero-size container %dx%d", 0, 3)
	if !strings.HasPrefix(got, "dotgrid: ") {
		t.Errorf("violation() = %q, want dotgrid: prefix", got)
	}
	if !strings.Contains(got, "0x3") {
		t.Errorf("violation() = %q, want formatted args", got)
	}
}

func TestAssertfHolds(t *testing.T) {
	// A satisfied contract never panics, with or without the tag.
	Assertf(true, "unreachable")
}
