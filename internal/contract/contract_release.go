//go:build !dotgrid_debug

package contract

// Enabled reports whether contract checks are compiled in.
const Enabled = false

// Assertf is a no-op in release builds.
func Assertf(cond bool, format string, args ...interface{}) {}
