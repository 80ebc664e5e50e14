// Package contract checks development-time contracts.
//
// Contracts are compiled in only when building with the dotgrid_debug tag.
// A violated contract then panics with a message prefixed "dotgrid: ".
// Release builds skip the checks entirely; the behaviour of a call that
// violates a contract is unspecified there, and callers must not rely on it.
package contract

import "fmt"

// violation builds the panic message for a failed contract.
func violation(format string, args ...interface{}) string {
	return "dotgrid: " + fmt.Sprintf(format, args...)
}
