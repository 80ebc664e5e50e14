package printer

import "errors"

// Transmission error kinds. Returned errors wrap one of these together with
// the underlying cause where there is one; match them with errors.Is.
var (
	// ErrTimeout is returned when the printer does not answer in time.
	ErrTimeout = errors.New("timed out waiting for printer")

	// ErrDisconnected is returned when the device reports end of file.
	ErrDisconnected = errors.New("printer disconnected")

	// ErrPermission is returned when the device cannot be opened for lack of access.
	ErrPermission = errors.New("permission denied")

	// ErrDeviceNotFound is returned when the device path does not exist.
	ErrDeviceNotFound = errors.New("printer device not found")

	// ErrWriteZero is returned when the device accepts no bytes from a write.
	ErrWriteZero = errors.New("device accepted zero bytes")

	// ErrClosed is returned by operations on a closed Printer.
	ErrClosed = errors.New("printer closed")
)

// Command argument error kinds, carried by *ArgumentError.
var (
	// ErrInvalidPageLength is returned for a page length below one or above the command's limit.
	ErrInvalidPageLength = errors.New("invalid page length")

	// ErrArgumentRange is returned when a command parameter does not fit its field.
	ErrArgumentRange = errors.New("argument out of range")
)

// permissionHint is appended to ErrPermission failures from Open.
const permissionHint = "add your user to the 'lp' group (sudo usermod -aG lp $USER) and log in again, or adjust the device's udev rules"
