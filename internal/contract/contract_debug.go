//go:build dotgrid_debug

package contract

// Enabled reports whether contract checks are compiled in.
const Enabled = true

// Assertf panics if cond is false.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(violation(format, args...))
	}
}
